package clips

import (
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
	r.POST("/clips", h.SubmitClip)
	r.GET("/clips", h.GetMyClips)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.GET("/clips", h.GetAllClips)
	admin.PATCH("/clips/:id/views", h.UpdateClipViews)
	admin.POST("/clips/:id/approve", h.ApproveClip)
	admin.POST("/clips/:id/reject", h.RejectClip)
}

func (h *Handler) SubmitClip(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req SubmitClipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid clip submission", fields)
		return
	}

	clip, err := h.service.Submit(c.Request.Context(), userID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, clip)
}

func (h *Handler) GetMyClips(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	clips, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"clips": clips, "count": len(clips)})
}

func (h *Handler) GetAllClips(c *gin.Context) {
	var filter ClipListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	clips, err := h.service.ListAll(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"clips": clips, "count": len(clips)})
}

func (h *Handler) UpdateClipViews(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid clip ID")
		return
	}

	var req UpdateViewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if req.Views < 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Views must not be negative")
		return
	}

	clip, err := h.service.UpdateViews(c.Request.Context(), id, req.Views)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, clip)
}

func (h *Handler) ApproveClip(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid clip ID")
		return
	}

	clip, err := h.service.Approve(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, clip)
}

func (h *Handler) RejectClip(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid clip ID")
		return
	}

	clip, err := h.service.Reject(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, clip)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrClipNotFound), errors.Is(err, ErrCampaignNotFound), errors.Is(err, ErrAccountNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrAlreadyResolved):
		response.Error(c, http.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, ErrPlatformUnknown),
		errors.Is(err, ErrPlatformDisabled),
		errors.Is(err, ErrPlatformMismatch),
		errors.Is(err, ErrAccountNotVerified),
		errors.Is(err, ErrRPMNotConfigured):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
