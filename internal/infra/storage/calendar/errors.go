package calendar

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация календаря не найдена
	ErrConfigNotFound = errors.New("calendar.repository: config not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("calendar.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("calendar.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("calendar.repository: failed to scan row")

	// ErrEncode возвращается при ошибке сериализации overrides в JSON
	ErrEncode = errors.New("calendar.repository: failed to encode config")
)
