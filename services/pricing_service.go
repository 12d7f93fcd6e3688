package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"hotel-pricing/models"
	"hotel-pricing/repositories"
)

// BookingRepository loads bookings by ID.
type BookingRepository interface {
	GetBooking(ctx context.Context, id string) (models.Booking, error)
}

// RoomRepository loads rooms by ID.
type RoomRepository interface {
	GetRoom(ctx context.Context, id string) (models.Room, error)
}

// StayQuote is an ad-hoc stay priced against a stored room.
type StayQuote struct {
	RoomID  string `json:"roomId"`
	BookIn  string `json:"bookIn"`
	Eta     string `json:"eta"`
	BookOut string `json:"bookOut"`
	Etd     string `json:"etd"`
}

// PricingService resolves bookings and rooms and prices them with
// ComputeOptimalPrice. It never writes.
type PricingService struct {
	bookings BookingRepository
	rooms    RoomRepository
	logger   *slog.Logger
}

func NewPricingService(bookings BookingRepository, rooms RoomRepository, logger *slog.Logger) *PricingService {
	return &PricingService{bookings: bookings, rooms: rooms, logger: defaultLogger(logger)}
}

// QuoteBooking computes the optimal price of a stored booking.
func (s *PricingService) QuoteBooking(ctx context.Context, bookingID string) (result PriceResult, err error) {
	ctx, span := startSpan(ctx, "PricingService.QuoteBooking", attribute.String("booking.id", bookingID))
	logger := serviceLogger(s.logger, "PricingService", "QuoteBooking", "booking_id", bookingID)
	defer func() { finishOperation(ctx, span, logger, err, "booking priced") }()

	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		err = fmt.Errorf("%w: booking id is empty", ErrNotFound)
		return
	}

	booking, err := s.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		err = mapRepoError(err, "booking", bookingID)
		return
	}

	// completeness is checked before the room lookup so a booking without a
	// room reports IncompleteBookingData rather than NotFound
	if missing := missingBookingFields(booking); len(missing) > 0 {
		err = fmt.Errorf("%w: booking %s missing %s", ErrIncompleteBookingData, bookingID, strings.Join(missing, ", "))
		return
	}

	room, err := s.rooms.GetRoom(ctx, booking.RoomID)
	if err != nil {
		err = mapRepoError(err, "room", booking.RoomID)
		return
	}

	result, err = ComputeOptimalPrice(booking, room)
	return
}

// QuoteStay prices a stay window for a room without a stored booking.
func (s *PricingService) QuoteStay(ctx context.Context, quote StayQuote) (result PriceResult, err error) {
	ctx, span := startSpan(ctx, "PricingService.QuoteStay", attribute.String("room.id", quote.RoomID))
	logger := serviceLogger(s.logger, "PricingService", "QuoteStay", "room_id", quote.RoomID)
	defer func() { finishOperation(ctx, span, logger, err, "stay priced") }()

	roomID := strings.TrimSpace(quote.RoomID)
	if roomID == "" {
		err = fmt.Errorf("%w: missing roomId", ErrIncompleteBookingData)
		return
	}

	room, err := s.rooms.GetRoom(ctx, roomID)
	if err != nil {
		err = mapRepoError(err, "room", roomID)
		return
	}

	booking := models.Booking{
		HotelID: room.HotelID,
		RoomID:  room.ID,
		BookIn:  quote.BookIn,
		Eta:     quote.Eta,
		BookOut: quote.BookOut,
		Etd:     quote.Etd,
	}
	result, err = ComputeOptimalPrice(booking, room)
	return
}

func mapRepoError(err error, entity, id string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("%w: %s %s", ErrNotFound, entity, id)
	}
	return fmt.Errorf("load %s %s: %w", entity, id, err)
}
