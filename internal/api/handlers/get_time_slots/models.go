package get_time_slots

import (
	"github.com/artemkls/HMS-BookingService/internal/domain"
	getTimeSlots "github.com/artemkls/HMS-BookingService/internal/usecase/get_time_slots"
)

// SlotsResponse HTTP response model.
// Слоты отдаются плоским списком времен, занятость - отдельной картой:
// виджет календаря рисует сетку по slots и закрашивает ячейки по taken.
type SlotsResponse struct {
	Date            string         `json:"date"`
	Bookable        bool           `json:"bookable"`
	Slots           []string       `json:"slots"`
	Taken           map[string]int `json:"taken"`
	CapacityPerSlot int            `json:"capacityPerSlot"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTimeSlots.Response) *SlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	taken := make(map[string]int, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.StartTime.String())
		taken[s.StartTime.String()] = s.Taken
	}

	return &SlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		Bookable:        resp.Bookable,
		Slots:           slots,
		Taken:           taken,
		CapacityPerSlot: resp.Capacity,
	}
}
