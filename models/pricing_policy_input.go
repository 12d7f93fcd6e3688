package models

// PolicyInput is the request body of a policy save. Everything is optional at
// the decoding stage; the policy service decides what is required.
type PolicyInput struct {
	Scope  string `json:"scope"`
	RoomID string `json:"roomId"`

	DefaultCheckInTime  *string `json:"defaultCheckInTime"`
	DefaultCheckOutTime *string `json:"defaultCheckOutTime"`

	EarlyCheckInFee    *TimedFeeInput           `json:"earlyCheckInFee"`
	LateCheckOutFee    *TimedFeeInput           `json:"lateCheckOutFee"`
	MinStayRequirement *MinStayRequirementInput `json:"minStayRequirement"`
	MinStayDiscount    *MinStayDiscountInput    `json:"minStayDiscount"`

	SpecialRates       []SpecialRateInput        `json:"specialRates"`
	SeasonalAdjustment []SeasonalAdjustmentInput `json:"seasonalAdjustment"`
	ExtraFees          []ExtraFeeInput           `json:"extraFees"`
}

type TimedFeeInput struct {
	Type   string      `json:"type"`
	Amount NumberField `json:"amount"`
	Before string      `json:"before"`
	After  string      `json:"after"`
}

type MinStayRequirementInput struct {
	MinNights  NumberField `json:"minNights"`
	PenaltyFee NumberField `json:"penaltyFee"`
}

type MinStayDiscountInput struct {
	MinNights          NumberField `json:"minNights"`
	DiscountPercentage NumberField `json:"discountPercentage"`
}

type SpecialRateInput struct {
	Type       string      `json:"type"`
	Multiplier NumberField `json:"multiplier"`
	Days       []string    `json:"days"`
	StartDate  string      `json:"startDate"`
	EndDate    string      `json:"endDate"`
}

type SeasonalAdjustmentInput struct {
	StartDate  string      `json:"startDate"`
	EndDate    string      `json:"endDate"`
	Multiplier NumberField `json:"multiplier"`
}

type ExtraFeeInput struct {
	Type   string      `json:"type"`
	Amount NumberField `json:"amount"`
	Per    string      `json:"per"`
	After  string      `json:"after"`
}
