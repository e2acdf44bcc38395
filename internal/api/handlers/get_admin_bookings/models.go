package get_admin_bookings

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/artemkls/HMS-BookingService/internal/domain"
	"github.com/artemkls/HMS-BookingService/internal/service/bookings/models"
)

// parseQuery разбирает query параметры админской таблицы бронирований.
// Поддерживаются date (одна дата), startDate/endDate (период), addressId,
// status и includeInactive.
func parseQuery(query url.Values) (*models.GetAdminBookingsRequest, error) {
	req := &models.GetAdminBookingsRequest{}

	if v := query.Get("addressId"); v != "" {
		addressID, err := strconv.ParseInt(v, 10, 64)
		if err != nil || addressID <= 0 {
			return nil, fmt.Errorf("invalid addressId %q", v)
		}
		req.AddressID = &addressID
	}

	// date - сокращение для периода из одной даты
	if v := query.Get("date"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q", v)
		}
		req.StartDate = &date
		req.EndDate = &date
	} else {
		if v := query.Get("startDate"); v != "" {
			date, err := time.Parse(domain.DateFormat, v)
			if err != nil {
				return nil, fmt.Errorf("invalid startDate %q", v)
			}
			req.StartDate = &date
		}
		if v := query.Get("endDate"); v != "" {
			date, err := time.Parse(domain.DateFormat, v)
			if err != nil {
				return nil, fmt.Errorf("invalid endDate %q", v)
			}
			req.EndDate = &date
		}
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	if v := query.Get("includeInactive"); v != "" {
		include, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive %q", v)
		}
		req.IncludeInactive = include
	}

	return req, nil
}
