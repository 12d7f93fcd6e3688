package services

import (
	"fmt"
	"math"
	"strings"

	"hotel-pricing/models"
)

var weekdayNames = map[string]string{
	"sunday": "Sunday", "sun": "Sunday",
	"monday": "Monday", "mon": "Monday",
	"tuesday": "Tuesday", "tue": "Tuesday",
	"wednesday": "Wednesday", "wed": "Wednesday",
	"thursday": "Thursday", "thu": "Thursday",
	"friday": "Friday", "fri": "Friday",
	"saturday": "Saturday", "sat": "Saturday",
}

// NormalizePolicy validates a policy input and builds the document that will
// be stored. Scope and room are not checked here; see validatePolicyKey.
// Any problem rejects the whole input and is returned as *ValidationError.
func NormalizePolicy(input models.PolicyInput) (models.PricingPolicy, error) {
	vErr := &ValidationError{}
	policy := models.PricingPolicy{
		SpecialRates:       []models.SpecialRate{},
		SeasonalAdjustment: []models.SeasonalAdjustment{},
		ExtraFees:          []models.ExtraFee{},
	}

	policy.DefaultCheckInTime = optionalClock(vErr, "defaultCheckInTime", input.DefaultCheckInTime)
	policy.DefaultCheckOutTime = optionalClock(vErr, "defaultCheckOutTime", input.DefaultCheckOutTime)

	if input.EarlyCheckInFee != nil {
		policy.EarlyCheckInFee = normalizeTimedFee(vErr, "earlyCheckInFee", *input.EarlyCheckInFee, false)
	}
	if input.LateCheckOutFee != nil {
		policy.LateCheckOutFee = normalizeTimedFee(vErr, "lateCheckOutFee", *input.LateCheckOutFee, true)
	}

	if in := input.MinStayRequirement; in != nil {
		policy.MinStayRequirement = &models.MinStayRequirement{
			MinNights:  wholeNumber(vErr, "minStayRequirement.minNights", in.MinNights, true),
			PenaltyFee: nonNegative(vErr, "minStayRequirement.penaltyFee", in.PenaltyFee, true),
		}
	}

	if in := input.MinStayDiscount; in != nil {
		discount := models.MinStayDiscount{
			MinNights:          wholeNumber(vErr, "minStayDiscount.minNights", in.MinNights, false),
			DiscountPercentage: nonNegative(vErr, "minStayDiscount.discountPercentage", in.DiscountPercentage, false),
		}
		if discount.DiscountPercentage > 100 {
			vErr.add("minStayDiscount.discountPercentage", "must be between 0 and 100")
		}
		if discount.MinNights > 0 && discount.DiscountPercentage <= 0 {
			vErr.add("minStayDiscount.discountPercentage", "must be greater than 0 when minNights is set")
		}
		policy.MinStayDiscount = discount
	}

	for i, in := range input.SpecialRates {
		if rate, ok := normalizeSpecialRate(vErr, fmt.Sprintf("specialRates[%d]", i), in); ok {
			policy.SpecialRates = append(policy.SpecialRates, rate)
		}
	}

	for i, in := range input.SeasonalAdjustment {
		field := fmt.Sprintf("seasonalAdjustment[%d]", i)
		start, end, ok := dateRange(vErr, field, in.StartDate, in.EndDate)
		multiplier := positive(vErr, field+".multiplier", in.Multiplier)
		if ok {
			policy.SeasonalAdjustment = append(policy.SeasonalAdjustment, models.SeasonalAdjustment{
				StartDate:  start,
				EndDate:    end,
				Multiplier: multiplier,
			})
		}
	}

	for i, in := range input.ExtraFees {
		policy.ExtraFees = append(policy.ExtraFees, normalizeExtraFee(vErr, fmt.Sprintf("extraFees[%d]", i), in))
	}

	if vErr.HasErrors() {
		return models.PricingPolicy{}, vErr
	}
	return policy, nil
}

// validatePolicyKey checks the addressing part of a save or lookup.
func validatePolicyKey(hotelID, scope, roomID string) (models.PolicyKey, *ValidationError) {
	vErr := &ValidationError{}
	key := models.PolicyKey{
		HotelID: strings.TrimSpace(hotelID),
		Scope:   strings.TrimSpace(scope),
	}

	if key.HotelID == "" {
		vErr.add("hotelId", "is required")
	}

	switch key.Scope {
	case models.ScopeGlobal:
	case models.ScopeRoom:
		key.RoomID = strings.TrimSpace(roomID)
		if key.RoomID == "" {
			vErr.add("roomId", "is required when scope is room")
		}
	case "":
		vErr.add("scope", "is required")
	default:
		vErr.add("scope", `must be "global" or "room"`)
	}

	if vErr.HasErrors() {
		return models.PolicyKey{}, vErr
	}
	return key, nil
}

func normalizeTimedFee(vErr *ValidationError, field string, in models.TimedFeeInput, late bool) *models.TimedFee {
	fee := &models.TimedFee{Type: strings.TrimSpace(in.Type)}
	if fee.Type != models.FeeTypeHourly && fee.Type != models.FeeTypeFlat {
		vErr.add(field+".type", `must be "hourly" or "flat"`)
	}
	fee.Amount = nonNegative(vErr, field+".amount", in.Amount, true)

	if late {
		fee.After = requiredClock(vErr, field+".after", in.After)
	} else {
		fee.Before = requiredClock(vErr, field+".before", in.Before)
	}
	return fee
}

func normalizeSpecialRate(vErr *ValidationError, field string, in models.SpecialRateInput) (models.SpecialRate, bool) {
	rate := models.SpecialRate{
		Type:       strings.TrimSpace(in.Type),
		Multiplier: positive(vErr, field+".multiplier", in.Multiplier),
	}

	switch rate.Type {
	case models.SpecialRateWeekend:
		if len(in.Days) == 0 {
			vErr.add(field+".days", "at least one day is required")
			return rate, false
		}
		for j, d := range in.Days {
			name, ok := weekdayNames[strings.ToLower(strings.TrimSpace(d))]
			if !ok {
				vErr.add(fmt.Sprintf("%s.days[%d]", field, j), fmt.Sprintf("unknown weekday %q", d))
				continue
			}
			rate.Days = append(rate.Days, name)
		}
	case models.SpecialRateHoliday:
		start, end, ok := dateRange(vErr, field, in.StartDate, in.EndDate)
		if !ok {
			return rate, false
		}
		rate.StartDate, rate.EndDate = start, end
	case "":
		vErr.add(field+".type", "is required")
		return rate, false
	default:
		vErr.add(field+".type", `must be "weekend" or "holiday"`)
		return rate, false
	}
	return rate, true
}

func normalizeExtraFee(vErr *ValidationError, field string, in models.ExtraFeeInput) models.ExtraFee {
	fee := models.ExtraFee{
		Type:   strings.TrimSpace(in.Type),
		Amount: nonNegative(vErr, field+".amount", in.Amount, true),
		Per:    strings.TrimSpace(in.Per),
	}
	if fee.Type == "" {
		vErr.add(field+".type", "is required")
	}

	after := strings.TrimSpace(in.After)
	switch fee.Per {
	case models.FeePerHour:
		fee.After = requiredClock(vErr, field+".after", after)
	case models.FeePerBooking, models.FeePerNight:
		if after != "" {
			vErr.add(field+".after", `is only allowed when per is "hour"`)
		}
	case "":
		vErr.add(field+".per", "is required")
	default:
		vErr.add(field+".per", `must be "booking", "night" or "hour"`)
	}
	return fee
}

// dateRange validates a YYYY-MM-DD pair with start strictly before end.
func dateRange(vErr *ValidationError, field, startRaw, endRaw string) (string, string, bool) {
	startRaw, endRaw = strings.TrimSpace(startRaw), strings.TrimSpace(endRaw)
	ok := true

	start, err := parseDate(startRaw)
	if err != nil {
		vErr.add(field+".startDate", "must be a date in YYYY-MM-DD format")
		ok = false
	}
	end, err := parseDate(endRaw)
	if err != nil {
		vErr.add(field+".endDate", "must be a date in YYYY-MM-DD format")
		ok = false
	}
	if ok && !start.Before(end) {
		vErr.add(field+".endDate", "must be after startDate")
		ok = false
	}
	return startRaw, endRaw, ok
}

func optionalClock(vErr *ValidationError, field string, value *string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return ""
	}
	return requiredClock(vErr, field, *value)
}

func requiredClock(vErr *ValidationError, field, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		vErr.add(field, "is required")
		return ""
	}
	if _, err := parseClock(value); err != nil {
		vErr.add(field, "must be a time in HH:MM format")
	}
	return value
}

func number(vErr *ValidationError, field string, n models.NumberField, required bool) (float64, bool) {
	if !n.Set {
		if required {
			vErr.add(field, "is required")
		}
		return 0, false
	}
	if n.Invalid {
		vErr.add(field, "must be a number")
		return 0, false
	}
	return n.Value, true
}

func nonNegative(vErr *ValidationError, field string, n models.NumberField, required bool) float64 {
	v, ok := number(vErr, field, n, required)
	if ok && v < 0 {
		vErr.add(field, "must not be negative")
	}
	return v
}

func positive(vErr *ValidationError, field string, n models.NumberField) float64 {
	v, ok := number(vErr, field, n, true)
	if ok && v <= 0 {
		vErr.add(field, "must be greater than 0")
	}
	return v
}

// maxWholeNumber bounds night counts so the int conversion cannot overflow.
const maxWholeNumber = math.MaxInt32

func wholeNumber(vErr *ValidationError, field string, n models.NumberField, required bool) int {
	v := nonNegative(vErr, field, n, required)
	if v > maxWholeNumber {
		vErr.add(field, "is too large")
		return 0
	}
	if v != math.Trunc(v) {
		vErr.add(field, "must be a whole number")
	}
	if v < 0 {
		return 0
	}
	return int(v)
}
