package check_booking_limit

import "time"

// Request модель запроса проверки дневного лимита клиента
type Request struct {
	CustomerID int64     // ID клиента
	Date       time.Time // Дата, на которую проверяется лимит
}

// Response модель ответа проверки лимита.
// При неактивном лимите Reached всегда false, а Remaining равен
// сигнальному значению domain.UnlimitedBookings.
type Response struct {
	LimitActive bool // Включен ли лимит
	Limit       int  // Значение лимита (0 при выключенном)
	ActiveCount int  // Записей клиента на дату в статусах pending/approved
	Reached     bool // Исчерпан ли лимит
	Remaining   int  // Сколько записей осталось, не бывает отрицательным
}
