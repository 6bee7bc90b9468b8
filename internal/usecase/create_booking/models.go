package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модель запроса создания записи
type Request struct {
	CustomerID int64            // ID клиента
	ServiceID  int64            // ID услуги
	Date       time.Time        // Дата записи
	StartTime  types.TimeString // Время начала, "HH:MM"
	Notes      *string          // Заметки клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID         int64            // ID созданной записи
	CustomerID int64            // ID клиента
	ServiceID  int64            // ID услуги
	Date       time.Time        // Дата записи
	StartTime  types.TimeString // Время начала
	Status     string           // Статус, всегда pending при создании
	Notes      *string          // Заметки клиента
	CreatedAt  time.Time        // Время создания
}
