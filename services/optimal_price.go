package services

import (
	"fmt"
	"strings"
	"time"

	"hotel-pricing/models"
)

const (
	PricingMethodHourly  = "hourly"
	PricingMethodNightly = "nightly"
)

const (
	dateLayout     = "2006-01-02"
	secondsPerHour = 60 * 60
	secondsPerDay  = 24 * secondsPerHour
)

var clockLayouts = []string{"15:04", "15:04:05"}

// PriceResult is the breakdown returned for a stay.
type PriceResult struct {
	TotalHours      int     `json:"totalHours"`
	Nights          int     `json:"nights"`
	AdditionalHours int     `json:"additionalHours"`
	HourlyPrice     float64 `json:"hourlyPrice"`
	NightlyPrice    float64 `json:"nightlyPrice"`
	OptimalPrice    float64 `json:"optimalPrice"`
	PricingMethod   string  `json:"pricingMethod"`
}

// ComputeOptimalPrice bills the booking's stay both by the hour and by the
// night and returns the cheaper of the two. It has no side effects.
//
// Hourly billing rounds the stay up to whole hours. Nightly billing counts
// calendar days between the two dates and charges leftover hours at the hourly
// rate, unless those hours would cost more than a night, in which case one
// more night is billed instead. A tie goes to hourly billing.
func ComputeOptimalPrice(booking models.Booking, room models.Room) (PriceResult, error) {
	if missing := missingBookingFields(booking); len(missing) > 0 {
		return PriceResult{}, fmt.Errorf("%w: missing %s", ErrIncompleteBookingData, strings.Join(missing, ", "))
	}

	hourRate, nightRate, err := roomRates(room)
	if err != nil {
		return PriceResult{}, err
	}

	dayIn, err := parseDate(booking.BookIn)
	if err != nil {
		return PriceResult{}, fmt.Errorf("%w: bookIn %q", ErrInvalidDateFormat, booking.BookIn)
	}
	dayOut, err := parseDate(booking.BookOut)
	if err != nil {
		return PriceResult{}, fmt.Errorf("%w: bookOut %q", ErrInvalidDateFormat, booking.BookOut)
	}
	eta, err := parseClock(booking.Eta)
	if err != nil {
		return PriceResult{}, fmt.Errorf("%w: eta %q", ErrInvalidDateFormat, booking.Eta)
	}
	etd, err := parseClock(booking.Etd)
	if err != nil {
		return PriceResult{}, fmt.Errorf("%w: etd %q", ErrInvalidDateFormat, booking.Etd)
	}

	checkIn := dayIn.Add(eta)
	checkOut := dayOut.Add(etd)

	totalHours := ceilHours(checkOut.Unix() - checkIn.Unix())
	if totalHours <= 0 {
		return PriceResult{}, fmt.Errorf("%w: check-out %s is not after check-in %s",
			ErrInvalidStayDuration, checkOut.Format(time.DateTime), checkIn.Format(time.DateTime))
	}

	hourlyPrice := float64(totalHours) * hourRate

	nights := int((dayOut.Unix() - dayIn.Unix()) / secondsPerDay)
	if nights < 0 {
		nights = 0
	}
	remaining := totalHours - nights*24
	if remaining < 0 {
		remaining = 0
	}
	if remaining > 0 && float64(remaining)*hourRate > nightRate {
		nights++
		remaining = 0
	}
	nightlyPrice := float64(nights)*nightRate + float64(remaining)*hourRate

	result := PriceResult{
		TotalHours:      totalHours,
		Nights:          nights,
		AdditionalHours: remaining,
		HourlyPrice:     hourlyPrice,
		NightlyPrice:    nightlyPrice,
	}
	if hourlyPrice <= nightlyPrice {
		result.OptimalPrice = hourlyPrice
		result.PricingMethod = PricingMethodHourly
	} else {
		result.OptimalPrice = nightlyPrice
		result.PricingMethod = PricingMethodNightly
	}
	return result, nil
}

func missingBookingFields(b models.Booking) []string {
	fields := []struct {
		name  string
		value string
	}{
		{"bookIn", b.BookIn},
		{"eta", b.Eta},
		{"bookOut", b.BookOut},
		{"etd", b.Etd},
		{"hotelId", b.HotelID},
		{"roomId", b.RoomID},
	}

	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func roomRates(room models.Room) (float64, float64, error) {
	var missing []string
	if room.PriceByHour == nil {
		missing = append(missing, "PriceByHour")
	}
	if room.PriceByNight == nil {
		missing = append(missing, "PriceByNight")
	}
	if len(missing) > 0 {
		return 0, 0, fmt.Errorf("%w: room %s missing %s", ErrIncompleteRoomPricingData, room.ID, strings.Join(missing, ", "))
	}
	if *room.PriceByHour < 0 || *room.PriceByNight < 0 {
		return 0, 0, fmt.Errorf("%w: room %s has a negative rate", ErrIncompleteRoomPricingData, room.ID)
	}
	return *room.PriceByHour, *room.PriceByNight, nil
}

// ceilHours rounds a span in seconds up to whole hours. Spans are taken from
// Unix seconds since time.Duration saturates near 292 years.
// Non-positive spans map to <= 0.
func ceilHours(seconds int64) int {
	hours := seconds / secondsPerHour
	if seconds%secondsPerHour > 0 {
		hours++
	}
	return int(hours)
}

// Dates are parsed in UTC so every calendar day is exactly 24 hours long.
func parseDate(value string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, strings.TrimSpace(value), time.UTC)
}

// parseClock turns "HH:MM" or "HH:MM:SS" into an offset from midnight.
func parseClock(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	var lastErr error
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second, nil
		}
		lastErr = err
	}
	return 0, lastErr
}
