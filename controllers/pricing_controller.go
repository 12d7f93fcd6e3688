package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-pricing/services"
	"hotel-pricing/utils"
)

type quoteStayPayload struct {
	RoomID  string `json:"roomId" binding:"required"`
	BookIn  string `json:"bookIn"`
	Eta     string `json:"eta"`
	BookOut string `json:"bookOut"`
	Etd     string `json:"etd"`
}

type PricingController struct {
	PricingSvc *services.PricingService
	logger     *slog.Logger
}

func NewPricingController(svc *services.PricingService, logger *slog.Logger) *PricingController {
	if logger == nil {
		logger = slog.Default()
	}
	return &PricingController{PricingSvc: svc, logger: logger}
}

// GetBookingPrice (GET /api/booking/:bookingId/price)
func (ctrl *PricingController) GetBookingPrice(c *gin.Context) {
	bookingID := c.Param("bookingId")

	result, err := ctrl.PricingSvc.QuoteBooking(c.Request.Context(), bookingID)
	if err != nil {
		respondServiceError(c, ctrl.logger, "GetBookingPrice", err, "booking_id", bookingID)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, result, "optimal price computed")
}

// QuoteStay (POST /api/pricing/quote)
func (ctrl *PricingController) QuoteStay(c *gin.Context) {
	var payload quoteStayPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindingError(c, err)
		return
	}

	result, err := ctrl.PricingSvc.QuoteStay(c.Request.Context(), services.StayQuote{
		RoomID:  payload.RoomID,
		BookIn:  payload.BookIn,
		Eta:     payload.Eta,
		BookOut: payload.BookOut,
		Etd:     payload.Etd,
	})
	if err != nil {
		respondServiceError(c, ctrl.logger, "QuoteStay", err, "room_id", payload.RoomID)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, result, "optimal price computed")
}
