package schedule

import "errors"

var (
	// ErrBlackoutNotFound возвращается, когда блэкаут не найден
	ErrBlackoutNotFound = errors.New("blackout date not found")

	// ErrBucketNotFound возвращается, когда бакет вместимости не найден
	ErrBucketNotFound = errors.New("capacity bucket not found")

	// ErrDuplicateBucket возвращается при создании бакета с существующей
	// парой (день недели, начало, конец)
	ErrDuplicateBucket = errors.New("capacity bucket with the same weekday and time range already exists")

	// ErrUnavailabilityNotFound возвращается, когда отметка недоступности не найдена
	ErrUnavailabilityNotFound = errors.New("staff unavailability not found")

	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
