package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-pricing/models"
)

// PolicyRepository keeps one JSON document per (hotel, scope, room) key.
type PolicyRepository struct {
	DB *gorm.DB
}

func NewPolicyRepository(db *gorm.DB) *PolicyRepository {
	return &PolicyRepository{DB: db}
}

func (r *PolicyRepository) GetPolicy(ctx context.Context, key models.PolicyKey) (models.PricingPolicy, error) {
	var record models.PricingPolicyRecord
	err := r.DB.WithContext(ctx).
		Where("hotel_id = ? AND scope = ? AND room_id = ?", key.HotelID, key.Scope, key.RoomID).
		First(&record).Error
	if err != nil {
		return models.PricingPolicy{}, translate(err)
	}

	var policy models.PricingPolicy
	if err := json.Unmarshal(record.Document, &policy); err != nil {
		return models.PricingPolicy{}, fmt.Errorf("decode pricing policy %d: %w", record.ID, err)
	}
	return policy, nil
}

// SavePolicy writes the document in one upsert, replacing whatever was stored
// at the same key. Concurrent saves to one key: last write wins.
func (r *PolicyRepository) SavePolicy(ctx context.Context, policy models.PricingPolicy) error {
	doc, err := json.Marshal(policy)
	if err != nil {
		return fmt.Errorf("encode pricing policy: %w", err)
	}

	key := policy.Key()
	record := models.PricingPolicyRecord{
		HotelID:  key.HotelID,
		Scope:    key.Scope,
		RoomID:   key.RoomID,
		Document: datatypes.JSON(doc),
	}

	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "hotel_id"}, {Name: "scope"}, {Name: "room_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
	}).Create(&record).Error
}
