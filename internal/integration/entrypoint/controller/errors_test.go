package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainerror "github.com/expense-ledger/backend/internal/domain/error"
	"github.com/expense-ledger/backend/internal/integration/entrypoint/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "validation",
			err:        domainerror.NewExpenseError(domainerror.ErrCodeInvalidExpenseAmount, "bad amount", domainerror.ErrInvalidExpenseAmount),
			wantStatus: http.StatusBadRequest,
			wantCode:   "EXP-010001",
		},
		{
			name:       "username taken",
			err:        domainerror.NewAuthError(domainerror.ErrCodeUsernameTaken, "taken", domainerror.ErrUsernameTaken),
			wantStatus: http.StatusConflict,
			wantCode:   "AUTH-010001",
		},
		{
			name:       "invalid credentials",
			err:        domainerror.NewAuthError(domainerror.ErrCodeInvalidCredentials, "nope", domainerror.ErrInvalidCredentials),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "AUTH-020001",
		},
		{
			name:       "user not found",
			err:        domainerror.NewAuthError(domainerror.ErrCodeUserNotFound, "gone", domainerror.ErrUserNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "AUTH-020002",
		},
		{
			name:       "budget conflict",
			err:        domainerror.NewBudgetError(domainerror.ErrCodeBudgetConflict, "conflict", errors.New("lost race")),
			wantStatus: http.StatusConflict,
			wantCode:   "BUD-020001",
		},
		{
			name:       "wrapped storage failure",
			err:        fmt.Errorf("failed to allocate: %w", domainerror.StorageUnavailable(errors.New("dial tcp"))),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "LEDGER-020001",
		},
		{
			name:       "bare taxonomy sentinel",
			err:        fmt.Errorf("lookup: %w", domainerror.ErrBudgetNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "LEDGER-010003",
		},
		{
			name:       "unknown",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(rec)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			handleError(ctx, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			var body dto.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Code != tt.wantCode {
				t.Errorf("expected code %q, got %q", tt.wantCode, body.Code)
			}
			if tt.wantStatus == http.StatusInternalServerError && body.Error != "An internal error occurred" {
				t.Errorf("internal errors must not leak details, got %q", body.Error)
			}
		})
	}
}

func TestHealthController_Check(t *testing.T) {
	up := func() bool { return true }
	down := func() bool { return false }

	tests := []struct {
		name         string
		db           func() bool
		redis        func() bool
		wantStatus   int
		wantDatabase string
		wantRedis    string
	}{
		{name: "healthy without redis", db: up, wantStatus: http.StatusOK, wantDatabase: "connected", wantRedis: "disabled"},
		{name: "healthy with redis", db: up, redis: up, wantStatus: http.StatusOK, wantDatabase: "connected", wantRedis: "connected"},
		{name: "redis down", db: up, redis: down, wantStatus: http.StatusOK, wantDatabase: "connected", wantRedis: "disconnected"},
		{name: "database down", db: down, wantStatus: http.StatusServiceUnavailable, wantDatabase: "disconnected", wantRedis: "disabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			engine.GET("/health", NewHealthController(tt.db, tt.redis).Check)

			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			var body HealthResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Database != tt.wantDatabase || body.Redis != tt.wantRedis {
				t.Errorf("unexpected health body: %+v", body)
			}
		})
	}
}
