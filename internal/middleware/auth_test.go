package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"cliprewards/internal/domain"
	jwtsvc "cliprewards/internal/pkg/jwt"
)

type staticUserLoader struct {
	users map[string]*domain.User
}

func (l *staticUserLoader) GetByProviderID(_ context.Context, providerID string) (*domain.User, error) {
	if u, ok := l.users[providerID]; ok {
		return u, nil
	}
	return nil, gormNotFound{}
}

type gormNotFound struct{}

func (gormNotFound) Error() string { return "record not found" }

func setupAuthRouter(t *testing.T) (*gin.Engine, *jwtsvc.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	j := jwtsvc.New("test-secret", time.Hour)
	loader := &staticUserLoader{users: map[string]*domain.User{
		"user_creator": {ProviderID: "user_creator", Role: domain.RoleCreator},
		"user_admin":   {ProviderID: "user_admin", Role: domain.RoleAdmin},
	}}

	r := gin.New()
	protected := r.Group("/")
	protected.Use(RequireAuth(j, loader))
	protected.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": CurrentUserID(c), "role": c.GetString("role")})
	})

	admin := protected.Group("/admin")
	admin.Use(AdminOnly())
	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pong": true})
	})

	return r, j
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestRequireAuthRejectsMissingOrBadTokens(t *testing.T) {
	r, _ := setupAuthRouter(t)

	if rr := get(r, "/me", ""); rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rr.Code)
	}
	if rr := get(r, "/me", "not-a-token"); rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", rr.Code)
	}

	expired := jwtsvc.New("test-secret", -time.Hour)
	token, err := expired.GenerateToken("user_creator")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if rr := get(r, "/me", token); rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", rr.Code)
	}
}

func TestRequireAuthLoadsRoleFromRecord(t *testing.T) {
	r, j := setupAuthRouter(t)

	token, err := j.GenerateToken("user_creator")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	rr := get(r, "/me", token)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp["user_id"] != "user_creator" || resp["role"] != "creator" {
		t.Fatalf("unexpected identity: %v", resp)
	}
}

func TestUnsyncedUserIsAuthenticatedButRoleless(t *testing.T) {
	r, j := setupAuthRouter(t)

	token, err := j.GenerateToken("user_unknown")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	rr := get(r, "/me", token)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for unsynced user, got %d", rr.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp["role"] != "" {
		t.Fatalf("expected empty role, got %q", resp["role"])
	}
}

func TestAdminOnlyGatesOnStoredRole(t *testing.T) {
	r, j := setupAuthRouter(t)

	creatorToken, err := j.GenerateToken("user_creator")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if rr := get(r, "/admin/ping", creatorToken); rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for creator, got %d", rr.Code)
	}

	adminToken, err := j.GenerateToken("user_admin")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if rr := get(r, "/admin/ping", adminToken); rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", rr.Code)
	}
}
