package create_booking

import (
	"time"

	"github.com/artemkls/HMS-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования.
// Момент начала задается одним из двух способов: абсолютным моментом StartsAt
// (привязывается к дате и слоту в таймзоне тенанта) либо парой Date+StartTime,
// уже выраженной в таймзоне тенанта.
type Request struct {
	UserID    int64            // ID клиента
	AddressID int64            // ID адреса клиента
	Service   string           // Название услуги (например, "TV Mounting")
	StartsAt  *time.Time       // Абсолютный момент начала (опционально)
	Date      time.Time        // Дата бронирования в таймзоне тенанта (без времени)
	StartTime types.TimeString // Время начала слота (например, "10:00")
	Note      *string          // Заметка для мастера (опционально)
	Images    []string         // Ссылки на загруженные фотографии (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64            // ID созданного бронирования
	BookingNumber string           // Человекочитаемый номер, например "HM-20260115-4F2A"
	UserID        int64            // ID клиента
	AddressID     int64            // ID адреса
	Service       string           // Название услуги
	StartsAt      time.Time        // Абсолютный момент начала (UTC)
	BookingDate   time.Time        // Дата в таймзоне тенанта
	StartTime     types.TimeString // Время начала
	Status        string           // Статус бронирования
	Note          *string          // Заметка
	Images        []string         // Ссылки на фотографии

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
