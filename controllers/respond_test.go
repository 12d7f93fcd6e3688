package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	mysqldriver "github.com/go-sql-driver/mysql"

	"hotel-pricing/services"
)

type errorBody struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Details map[string]string `json:"details"`
}

func respond(t *testing.T, logger *slog.Logger, operation string, err error) (int, errorBody) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	respondServiceError(c, logger, operation, err)

	var body errorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %q", w.Body.String())
	}
	return w.Code, body
}

func TestRespondServiceError_LogsMySQLErrorNumber(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	driverErr := &mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry 'h-1-global-' for key 'idx_pricing_policy_scope'"}
	err := fmt.Errorf("save pricing policy: %w", driverErr)

	code, body := respond(t, logger, "SavePricingPolicy", err)
	if code != http.StatusInternalServerError || body.Error != services.CodeInternal {
		t.Fatalf("status %d, body %+v", code, body)
	}
	if strings.Contains(body.Message, "Duplicate") {
		t.Fatalf("driver message leaked to the client: %q", body.Message)
	}

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("log line is not JSON: %q", buf.String())
	}
	if entry["mysql_error_number"] != float64(1062) {
		t.Fatalf("mysql_error_number %v", entry["mysql_error_number"])
	}
	if entry["mysql_duplicate_key"] != true {
		t.Fatalf("mysql_duplicate_key %v", entry["mysql_duplicate_key"])
	}
	if entry["operation"] != "SavePricingPolicy" {
		t.Fatalf("operation %v", entry["operation"])
	}
}

func TestRespondServiceError_PlainInternalErrorHasNoMySQLFields(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	code, _ := respond(t, logger, "GetBookingPrice", errors.New("connection refused"))
	if code != http.StatusInternalServerError {
		t.Fatalf("status %d", code)
	}
	if strings.Contains(buf.String(), "mysql_error_number") {
		t.Fatalf("unexpected mysql fields in %s", buf.String())
	}
}

func TestRespondServiceError_ValidationMessages(t *testing.T) {
	quiet := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	tests := []struct {
		name      string
		operation string
		fields    map[string]string
		want      string
	}{
		{"save with bad scope", "SavePricingPolicy", map[string]string{"scope": "is required"}, "invalid pricing policy scope"},
		{"save with missing room", "SavePricingPolicy", map[string]string{"roomId": "is required when scope is room"}, "invalid pricing policy scope"},
		{"save with bad fee", "SavePricingPolicy", map[string]string{"extraFees[0].after": "is required"}, "invalid pricing policy"},
		{"save with bad scope and fee", "SavePricingPolicy", map[string]string{"scope": "is required", "extraFees[0].after": "is required"}, "invalid pricing policy"},
		{"lookup", "GetPricingPolicy", map[string]string{"scope": "is required"}, "invalid pricing policy lookup"},
		{"other operation", "QuoteStay", map[string]string{"roomId": "is required"}, "invalid request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &services.ValidationError{Fields: tt.fields}
			code, body := respond(t, quiet, tt.operation, err)
			if code != http.StatusBadRequest || body.Error != services.CodeValidation {
				t.Fatalf("status %d, body %+v", code, body)
			}
			if body.Message != tt.want {
				t.Fatalf("message %q, want %q", body.Message, tt.want)
			}
			if len(body.Details) != len(tt.fields) {
				t.Fatalf("details %v", body.Details)
			}
		})
	}
}
