package subscriptionservice

import "errors"

var (
	// ErrNoSubscription возвращается, когда у адреса нет подписки
	ErrNoSubscription = errors.New("subscriptionservice client: address has no subscription")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("subscriptionservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("subscriptionservice client: invalid response")
)
