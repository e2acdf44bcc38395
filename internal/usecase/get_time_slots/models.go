package get_time_slots

import (
	"time"

	"github.com/artemkls/HMS-BookingService/internal/domain"
)

// Request модель запроса на получение слотов дня
type Request struct {
	Date time.Time // Дата в таймзоне тенанта (без времени)
}

// Response модель ответа со слотами дня.
// Закрытый день возвращается с пустым списком слотов, а не с ошибкой:
// виджет календаря запрашивает и прошлые, и закрытые дни.
type Response struct {
	Date     time.Time                 // Дата, на которую запрашивались слоты
	Bookable bool                      // Можно ли бронировать эту дату (срок, закрытие, заполненность)
	Capacity int                       // Вместимость каждого слота
	Slots    []domain.SlotAvailability // Полная сетка слотов дня со счетчиками занятости
}
