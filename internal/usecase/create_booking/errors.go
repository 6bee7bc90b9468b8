package create_booking

import "errors"

var (
	// ErrDailyLimitReached возвращается, когда клиент исчерпал дневной лимит записей
	ErrDailyLimitReached = errors.New("daily booking limit reached")

	// ErrDateBlackedOut возвращается, когда дата закрыта блэкаутом
	ErrDateBlackedOut = errors.New("date is blocked by a blackout rule")

	// ErrClosedDay возвращается при попытке записаться в выходной день
	ErrClosedDay = errors.New("business is closed on this day")

	// ErrOutsideBusinessHours возвращается, когда время не покрыто ни одним бакетом
	ErrOutsideBusinessHours = errors.New("time is outside business hours")

	// ErrCapacityFull возвращается, когда бакет вместимости заполнен
	ErrCapacityFull = errors.New("time slot is fully booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
