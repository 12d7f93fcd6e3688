package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when a referenced hotel, room or booking does not exist.
	ErrNotFound = errors.New("not found")

	ErrIncompleteBookingData     = errors.New("incomplete booking data")
	ErrIncompleteRoomPricingData = errors.New("incomplete room pricing data")
	ErrInvalidDateFormat         = errors.New("invalid date format")
	ErrInvalidStayDuration       = errors.New("invalid stay duration")
)

// Error codes reported to API clients.
const (
	CodeNotFound                  = "NotFound"
	CodeIncompleteBookingData     = "IncompleteBookingData"
	CodeIncompleteRoomPricingData = "IncompleteRoomPricingData"
	CodeInvalidDateFormat         = "InvalidDateFormat"
	CodeInvalidStayDuration       = "InvalidStayDuration"
	CodeValidation                = "ValidationError"
	CodeInternal                  = "InternalError"
)

// ValidationError collects field level problems keyed by field path,
// e.g. "extraFees[0].after".
type ValidationError struct {
	Fields map[string]string
}

func (v *ValidationError) Error() string {
	if v == nil || len(v.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(v.Fields))
	for k := range v.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, v.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.Fields) > 0
}

func (v *ValidationError) add(field, message string) {
	if v.Fields == nil {
		v.Fields = make(map[string]string)
	}
	// keep the first problem reported for a field
	if _, exists := v.Fields[field]; !exists {
		v.Fields[field] = message
	}
}

// ErrorCode maps sentinel and validation errors to the stable code used in
// responses and logs.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrIncompleteBookingData):
		return CodeIncompleteBookingData
	case errors.Is(err, ErrIncompleteRoomPricingData):
		return CodeIncompleteRoomPricingData
	case errors.Is(err, ErrInvalidDateFormat):
		return CodeInvalidDateFormat
	case errors.Is(err, ErrInvalidStayDuration):
		return CodeInvalidStayDuration
	}

	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return CodeValidation
	}
	return CodeInternal
}
