package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"hotel-pricing/models"
	"hotel-pricing/repositories"
)

// HotelRepository answers whether a hotel exists.
type HotelRepository interface {
	HotelExists(ctx context.Context, id string) (bool, error)
}

// PolicyRepository stores one policy document per key. GetPolicy returns
// repositories.ErrNotFound when nothing is stored; SavePolicy replaces the
// whole document.
type PolicyRepository interface {
	GetPolicy(ctx context.Context, key models.PolicyKey) (models.PricingPolicy, error)
	SavePolicy(ctx context.Context, policy models.PricingPolicy) error
}

type PolicyService struct {
	hotels   HotelRepository
	policies PolicyRepository
	now      func() time.Time
	logger   *slog.Logger
}

func NewPolicyService(hotels HotelRepository, policies PolicyRepository, now func() time.Time, logger *slog.Logger) *PolicyService {
	if now == nil {
		now = time.Now
	}
	return &PolicyService{hotels: hotels, policies: policies, now: now, logger: defaultLogger(logger)}
}

// SetPolicy validates input and replaces the policy stored at the scope it
// names. Nothing is written unless every field is valid.
func (s *PolicyService) SetPolicy(ctx context.Context, hotelID string, input models.PolicyInput) (policy models.PricingPolicy, err error) {
	ctx, span := startSpan(ctx, "PolicyService.SetPolicy",
		attribute.String("hotel.id", hotelID),
		attribute.String("policy.scope", input.Scope),
	)
	logger := serviceLogger(s.logger, "PolicyService", "SetPolicy",
		"hotel_id", hotelID, "scope", input.Scope, "room_id", input.RoomID)
	defer func() { finishOperation(ctx, span, logger, err, "pricing policy saved") }()

	key, vErr := validatePolicyKey(hotelID, input.Scope, input.RoomID)
	if vErr != nil {
		err = vErr
		return
	}

	if err = s.ensureHotel(ctx, key.HotelID); err != nil {
		return
	}

	policy, err = NormalizePolicy(input)
	if err != nil {
		return
	}
	policy.HotelID = key.HotelID
	policy.Scope = key.Scope
	policy.RoomID = key.RoomID
	policy.UpdatedAt = s.now().UTC().Truncate(time.Second)

	if err = s.policies.SavePolicy(ctx, policy); err != nil {
		err = fmt.Errorf("save pricing policy: %w", err)
		policy = models.PricingPolicy{}
		return
	}
	return
}

// GetPolicy returns the document stored at the scope. found is false when the
// hotel exists but no policy was saved there yet.
func (s *PolicyService) GetPolicy(ctx context.Context, hotelID, scope, roomID string) (policy models.PricingPolicy, found bool, err error) {
	ctx, span := startSpan(ctx, "PolicyService.GetPolicy",
		attribute.String("hotel.id", hotelID),
		attribute.String("policy.scope", scope),
	)
	logger := serviceLogger(s.logger, "PolicyService", "GetPolicy",
		"hotel_id", hotelID, "scope", scope, "room_id", roomID)
	defer func() { finishOperation(ctx, span, logger, err, "pricing policy loaded") }()

	key, vErr := validatePolicyKey(hotelID, scope, roomID)
	if vErr != nil {
		err = vErr
		return
	}

	if err = s.ensureHotel(ctx, key.HotelID); err != nil {
		return
	}

	policy, err = s.policies.GetPolicy(ctx, key)
	if errors.Is(err, repositories.ErrNotFound) {
		return models.PricingPolicy{}, false, nil
	}
	if err != nil {
		err = fmt.Errorf("load pricing policy: %w", err)
		return
	}
	return policy, true, nil
}

func (s *PolicyService) ensureHotel(ctx context.Context, hotelID string) error {
	exists, err := s.hotels.HotelExists(ctx, hotelID)
	if err != nil {
		return fmt.Errorf("look up hotel %s: %w", hotelID, err)
	}
	if !exists {
		return fmt.Errorf("%w: hotel %s", ErrNotFound, hotelID)
	}
	return nil
}
