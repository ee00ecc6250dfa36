package webhook

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	svix "github.com/svix/svix-webhooks/go"

	"cliprewards/internal/repository"
	"cliprewards/internal/pkg/response"
)

// Handler ingests identity provider webhooks and mirrors user records into
// the local users table. Verification uses the provider's svix signature; an
// unsigned or tampered payload never reaches the database.
type Handler struct {
	wh    *svix.Webhook
	users *repository.UserRepository
}

func NewHandler(secret string, users *repository.UserRepository) (*Handler, error) {
	wh, err := svix.NewWebhook(secret)
	if err != nil {
		return nil, err
	}
	return &Handler{wh: wh, users: users}, nil
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/webhooks/identity", h.HandleIdentityEvent)
}

type identityEvent struct {
	Type string `json:"type"`
	Data struct {
		ID             string `json:"id"`
		EmailAddresses []struct {
			EmailAddress string `json:"email_address"`
		} `json:"email_addresses"`
	} `json:"data"`
}

func (h *Handler) HandleIdentityEvent(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Could not read body")
		return
	}

	if err := h.wh.Verify(payload, c.Request.Header); err != nil {
		log.Printf("webhook: signature verification failed: %v", err)
		response.Error(c, http.StatusBadRequest, "INVALID_SIGNATURE", "Invalid signature")
		return
	}

	var evt identityEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Malformed event payload")
		return
	}

	switch evt.Type {
	case "user.created", "user.updated":
		if evt.Data.ID == "" {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Event has no user id")
			return
		}

		email := ""
		if len(evt.Data.EmailAddresses) > 0 {
			email = evt.Data.EmailAddresses[0].EmailAddress
		}

		if _, err := h.users.Upsert(c.Request.Context(), evt.Data.ID, email); err != nil {
			log.Printf("webhook: user upsert failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "User sync failed")
			return
		}

		response.Success(c, http.StatusOK, gin.H{"synced": true})
	default:
		// other event types are acknowledged so the provider stops retrying
		response.Success(c, http.StatusOK, gin.H{"synced": false})
	}
}
