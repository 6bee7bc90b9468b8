package limitsetting

import "errors"

var (
	// ErrSettingNotFound возвращается, когда активная настройка лимита отсутствует
	ErrSettingNotFound = errors.New("limitsetting.repository: active limit setting not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("limitsetting.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("limitsetting.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("limitsetting.repository: failed to scan row")
)
