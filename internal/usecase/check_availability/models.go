package check_availability

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// ReasonKind категория причины отказа
type ReasonKind string

const (
	ReasonBlackout ReasonKind = "blackout" // дата заблокирована блэкаутом
	ReasonClosed   ReasonKind = "closed"   // выходной день без бакетов вместимости
	ReasonDefault  ReasonKind = "default"  // время вне настроенных рабочих часов
	ReasonCapacity ReasonKind = "capacity" // бакет заполнен
)

// Reason причина, по которой слот недоступен
type Reason struct {
	Kind    ReasonKind // Категория причины
	Message string     // Человекочитаемое описание
}

// Request модель запроса проверки доступности слота
type Request struct {
	Date time.Time        // Дата записи (без времени)
	Time types.TimeString // Время начала слота, "HH:MM"
}

// Response модель ответа проверки доступности
type Response struct {
	Bookable bool    // Можно ли записаться на этот слот
	Reason   *Reason // Причина отказа, nil если слот доступен
}
