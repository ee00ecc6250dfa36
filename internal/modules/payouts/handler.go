package payouts

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cliprewards/internal/middleware"
	"cliprewards/internal/pkg/response"
	"cliprewards/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/payouts/settings", h.GetSettings)
	r.PUT("/payouts/settings", h.SaveSettings)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.GET("/payouts", h.ListPayouts)
	admin.POST("/payouts/:id/approve", h.ApprovePayout)
	admin.POST("/payouts/:id/reject", h.RejectPayout)
}

func (h *Handler) GetSettings(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	settings, err := h.service.GetSettings(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrPayoutNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, settings)
}

func (h *Handler) SaveSettings(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payout settings", fields)
		return
	}

	settings, err := h.service.SaveSettings(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, settings)
}

func (h *Handler) ListPayouts(c *gin.Context) {
	payouts, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payouts": payouts, "count": len(payouts)})
}

func (h *Handler) ApprovePayout(c *gin.Context) {
	h.setStatus(c, h.service.Approve)
}

func (h *Handler) RejectPayout(c *gin.Context) {
	h.setStatus(c, h.service.Reject)
}

func (h *Handler) setStatus(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid payout ID")
		return
	}

	if err := fn(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrPayoutNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Payout status updated"})
}
