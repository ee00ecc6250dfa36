package accounts

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

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
	r.GET("/accounts", h.ListAccounts)
	r.POST("/accounts/verify/generate", h.GenerateCode)
	r.POST("/accounts/verify/check", h.CheckVerification)
}

func (h *Handler) ListAccounts(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	accounts, err := h.service.ListVerified(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"accounts": accounts, "count": len(accounts)})
}

func (h *Handler) GenerateCode(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req GenerateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Username and platform are required", fields)
		return
	}

	account, err := h.service.GenerateCode(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrPlatformUnknown) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"verification_id": account.ID,
		"code":            account.VerificationCode,
	})
}

func (h *Handler) CheckVerification(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing verification id", fields)
		return
	}

	result, err := h.service.Check(c.Request.Context(), userID, req.VerificationID)
	if err != nil {
		switch {
		case errors.Is(err, ErrAccountNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		case errors.Is(err, ErrScrapeFailed):
			response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}
