package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ScopeGlobal = "global"
	ScopeRoom   = "room"
)

const (
	FeeTypeHourly = "hourly"
	FeeTypeFlat   = "flat"
)

const (
	SpecialRateWeekend = "weekend"
	SpecialRateHoliday = "holiday"
)

const (
	FeePerBooking = "booking"
	FeePerNight   = "night"
	FeePerHour    = "hour"
)

// PolicyKey addresses one policy document. RoomID is empty for the global scope.
type PolicyKey struct {
	HotelID string
	Scope   string
	RoomID  string
}

// PricingPolicy is the normalized document stored for a scope. It is always
// written whole; list fields are never nil so they serialize as [].
type PricingPolicy struct {
	HotelID string `json:"hotelId"`
	Scope   string `json:"scope"`
	RoomID  string `json:"roomId,omitempty"`

	DefaultCheckInTime  string `json:"defaultCheckInTime,omitempty"`
	DefaultCheckOutTime string `json:"defaultCheckOutTime,omitempty"`

	EarlyCheckInFee    *TimedFee           `json:"earlyCheckInFee,omitempty"`
	LateCheckOutFee    *TimedFee           `json:"lateCheckOutFee,omitempty"`
	MinStayRequirement *MinStayRequirement `json:"minStayRequirement,omitempty"`
	MinStayDiscount    MinStayDiscount     `json:"minStayDiscount"`

	SpecialRates       []SpecialRate        `json:"specialRates"`
	SeasonalAdjustment []SeasonalAdjustment `json:"seasonalAdjustment"`
	ExtraFees          []ExtraFee           `json:"extraFees"`

	UpdatedAt time.Time `json:"updatedAt"`
}

func (p PricingPolicy) Key() PolicyKey {
	return PolicyKey{HotelID: p.HotelID, Scope: p.Scope, RoomID: p.RoomID}
}

// TimedFee is an early check-in or late check-out fee. Before is used by the
// early fee, After by the late fee.
type TimedFee struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
	Before string  `json:"before,omitempty"`
	After  string  `json:"after,omitempty"`
}

type MinStayRequirement struct {
	MinNights  int     `json:"minNights"`
	PenaltyFee float64 `json:"penaltyFee"`
}

type MinStayDiscount struct {
	MinNights          int     `json:"minNights"`
	DiscountPercentage float64 `json:"discountPercentage"`
}

type SpecialRate struct {
	Type       string   `json:"type"`
	Multiplier float64  `json:"multiplier"`
	Days       []string `json:"days,omitempty"`
	StartDate  string   `json:"startDate,omitempty"`
	EndDate    string   `json:"endDate,omitempty"`
}

type SeasonalAdjustment struct {
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	Multiplier float64 `json:"multiplier"`
}

type ExtraFee struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
	Per    string  `json:"per"`
	After  string  `json:"after,omitempty"`
}

// PricingPolicyRecord is the table row behind a policy document. The unique
// index over (hotel_id, scope, room_id) makes a save a single upsert.
type PricingPolicyRecord struct {
	ID       uint           `gorm:"primaryKey" json:"id"`
	HotelID  string         `gorm:"column:hotel_id;size:36;not null;uniqueIndex:idx_pricing_policy_scope" json:"hotelId"`
	Scope    string         `gorm:"column:scope;size:16;not null;uniqueIndex:idx_pricing_policy_scope" json:"scope"`
	RoomID   string         `gorm:"column:room_id;size:36;not null;default:'';uniqueIndex:idx_pricing_policy_scope" json:"roomId"`
	Document datatypes.JSON `gorm:"column:document;not null" json:"document"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PricingPolicyRecord) TableName() string {
	return "pricing_policies"
}
