package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-pricing/models"
	"hotel-pricing/services"
	"hotel-pricing/utils"
)

type pricingPolicyQuery struct {
	HotelID string `form:"hotelId" binding:"required"`
	Scope   string `form:"scope" binding:"required,oneof=global room"`
	RoomID  string `form:"roomId" binding:"required_if=Scope room"`
}

type PolicyController struct {
	PolicySvc *services.PolicyService
	logger    *slog.Logger
}

func NewPolicyController(svc *services.PolicyService, logger *slog.Logger) *PolicyController {
	if logger == nil {
		logger = slog.Default()
	}
	return &PolicyController{PolicySvc: svc, logger: logger}
}

// SavePricingPolicy (POST /api/hotel/:hotelId/pricing-policy)
// The body replaces the whole policy at the scope it names.
func (ctrl *PolicyController) SavePricingPolicy(c *gin.Context) {
	hotelID := c.Param("hotelId")

	var input models.PolicyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	policy, err := ctrl.PolicySvc.SetPolicy(c.Request.Context(), hotelID, input)
	if err != nil {
		respondServiceError(c, ctrl.logger, "SavePricingPolicy", err,
			"hotel_id", hotelID, "scope", input.Scope, "room_id", input.RoomID)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, policy, "pricing policy saved")
}

// GetPricingPolicy (GET /api/pricing-policy?hotelId=&scope=&roomId=)
func (ctrl *PolicyController) GetPricingPolicy(c *gin.Context) {
	var q pricingPolicyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindingError(c, err)
		return
	}

	policy, found, err := ctrl.PolicySvc.GetPolicy(c.Request.Context(), q.HotelID, q.Scope, q.RoomID)
	if err != nil {
		respondServiceError(c, ctrl.logger, "GetPricingPolicy", err,
			"hotel_id", q.HotelID, "scope", q.Scope, "room_id", q.RoomID)
		return
	}

	if !found {
		utils.JSONSuccess(c, http.StatusOK, gin.H{}, "no pricing policy")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, policy, "")
}
