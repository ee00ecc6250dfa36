package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cliprewards/internal/domain"
	"cliprewards/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.GET("/users", h.GetUsers)
	admin.PATCH("/users/:id/role", h.SetUserRole)
}

func (h *Handler) GetUsers(c *gin.Context) {
	overviews, err := h.service.ListOverview(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"users": overviews, "count": len(overviews)})
}

type setRoleRequest struct {
	Role string `json:"role"`
}

func (h *Handler) SetUserRole(c *gin.Context) {
	providerID := c.Param("id")

	var req setRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	role := domain.UserRole(req.Role)
	if role != domain.RoleCreator && role != domain.RoleAdmin {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Role must be creator or admin")
		return
	}

	if err := h.service.SetRole(c.Request.Context(), providerID, role); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Role updated"})
}
