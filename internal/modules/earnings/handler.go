package earnings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cliprewards/internal/middleware"
	"cliprewards/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/earnings", h.GetMyEarnings)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.GET("/analytics", h.GetAnalytics)
}

func (h *Handler) GetMyEarnings(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	ledger, err := h.service.LedgerForUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, ledger)
}

func (h *Handler) GetAnalytics(c *gin.Context) {
	report, err := h.service.BuildAnalytics(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "ANALYTICS_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"analytics": report})
}
