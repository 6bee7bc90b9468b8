package capacity

import "errors"

var (
	// ErrBucketNotFound возвращается, когда бакет вместимости не найден
	ErrBucketNotFound = errors.New("capacity.repository: capacity bucket not found")

	// ErrDuplicateBucket возвращается при попытке создать бакет с уже
	// существующей парой (день недели, начало, конец)
	ErrDuplicateBucket = errors.New("capacity.repository: duplicate capacity bucket")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("capacity.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("capacity.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("capacity.repository: failed to scan row")
)
