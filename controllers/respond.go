package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	mysqldriver "github.com/go-sql-driver/mysql"

	"hotel-pricing/services"
	"hotel-pricing/utils"
)

// ER_DUP_ENTRY; a concurrent first save of one policy key can race the upsert.
const mysqlDuplicateEntry = 1062

// respondServiceError maps service errors to the HTTP taxonomy. Client errors
// carry their message; internal errors are logged and served generically.
func respondServiceError(c *gin.Context, logger *slog.Logger, operation string, err error, attrs ...any) {
	code := services.ErrorCode(err)

	switch code {
	case services.CodeNotFound:
		utils.JSONError(c, http.StatusNotFound, code, err.Error(), nil)
	case services.CodeValidation:
		var vErr *services.ValidationError
		errors.As(err, &vErr)
		utils.JSONError(c, http.StatusBadRequest, code, validationMessage(operation, vErr.Fields), vErr.Fields)
	case services.CodeIncompleteBookingData,
		services.CodeIncompleteRoomPricingData,
		services.CodeInvalidDateFormat,
		services.CodeInvalidStayDuration:
		utils.JSONError(c, http.StatusBadRequest, code, err.Error(), nil)
	default:
		pairs := append([]any{"operation", operation, "error", err}, attrs...)
		var myErr *mysqldriver.MySQLError
		if errors.As(err, &myErr) {
			pairs = append(pairs, "mysql_error_number", myErr.Number, "mysql_duplicate_key", myErr.Number == mysqlDuplicateEntry)
		}
		logger.ErrorContext(c.Request.Context(), "request failed", pairs...)
		utils.JSONError(c, http.StatusInternalServerError, services.CodeInternal, "internal server error", nil)
	}
}

func respondBindingError(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, services.CodeValidation, "invalid request", utils.BindingErrorDetails(err))
}

var policyKeyFields = map[string]bool{"hotelId": true, "scope": true, "roomId": true}

// validationMessage names what was wrong: the policy address or the policy
// body on a save, the lookup on a read.
func validationMessage(operation string, fields map[string]string) string {
	switch operation {
	case "GetPricingPolicy":
		return "invalid pricing policy lookup"
	case "SavePricingPolicy":
		for field := range fields {
			if !policyKeyFields[field] {
				return "invalid pricing policy"
			}
		}
		return "invalid pricing policy scope"
	default:
		return "invalid request"
	}
}
