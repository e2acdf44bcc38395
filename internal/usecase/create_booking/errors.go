package create_booking

import "errors"

var (
	// ErrAlreadyBooked возвращается, когда у адреса уже есть активное бронирование
	ErrAlreadyBooked = errors.New("create_booking: address already has an active booking")

	// ErrNoActiveSubscription возвращается, когда у адреса нет действующей подписки,
	// покрывающей запрошенную услугу
	ErrNoActiveSubscription = errors.New("create_booking: no active subscription for this address")

	// ErrSlotNotOffered возвращается, когда время не входит в список предлагаемых слотов
	ErrSlotNotOffered = errors.New("create_booking: slot is not offered on this date")

	// ErrDateNotBookable возвращается, когда дата в прошлом, закрыта или
	// нарушает минимальный срок предварительной записи
	ErrDateNotBookable = errors.New("create_booking: date is not bookable")

	// ErrSlotFull возвращается, когда все места слота заняты
	ErrSlotFull = errors.New("create_booking: slot is fully booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
