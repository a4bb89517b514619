package http

import (
	"net/http/httptest"
	"testing"
	"time"

	"restaurant-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		in    string
		token string
		ok    bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"bearer abc.def.ghi", "abc.def.ghi", true},
		{"Basic abc", "", false},
		{"Bearer ", "", false},
		{"", "", false},
		{"abc.def.ghi", "", false},
	}

	for _, tc := range tests {
		token, ok := ExtractBearerToken(tc.in)
		assert.Equalf(t, tc.ok, ok, "input %q", tc.in)
		assert.Equalf(t, tc.token, token, "input %q", tc.in)
	}
}

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func runAuth(t *testing.T, secret []byte, authz string) (*httptest.ResponseRecorder, service.Actor, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var (
		actor service.Actor
		found bool
	)
	r := gin.New()
	r.GET("/probe", Authenticate(secret, zap.NewNop()), func(c *gin.Context) {
		actor, found = service.ActorFromContext(c.Request.Context())
		c.Status(200)
	})

	req := httptest.NewRequest("GET", "/probe", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w, actor, found
}

func TestAuthenticate_ValidToken(t *testing.T) {
	secret := []byte("test-secret")
	userID := uuid.New()
	restaurantID := uuid.New()

	signed := signToken(t, secret, jwt.MapClaims{
		"id":           userID.String(),
		"role":         "worker",
		"restaurantId": restaurantID.String(),
		"exp":          time.Now().Add(time.Hour).Unix(),
	})

	w, actor, found := runAuth(t, secret, "Bearer "+signed)
	require.Equal(t, 200, w.Code)
	require.True(t, found)
	assert.Equal(t, userID, actor.ID)
	assert.Equal(t, service.RoleWorker, actor.Role)
	require.NotNil(t, actor.RestaurantID)
	assert.Equal(t, restaurantID, *actor.RestaurantID)
}

func TestAuthenticate_NoTokenIsAnonymous(t *testing.T) {
	w, _, found := runAuth(t, []byte("test-secret"), "")
	assert.Equal(t, 200, w.Code)
	assert.False(t, found)
}

func TestAuthenticate_BadSignatureRejected(t *testing.T) {
	signed := signToken(t, []byte("other-secret"), jwt.MapClaims{
		"id":   uuid.New().String(),
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	w, _, found := runAuth(t, []byte("test-secret"), "Bearer "+signed)
	assert.Equal(t, 401, w.Code)
	assert.False(t, found)
}

func TestAuthenticate_ExpiredTokenRejected(t *testing.T) {
	secret := []byte("test-secret")
	signed := signToken(t, secret, jwt.MapClaims{
		"id":   uuid.New().String(),
		"role": "customer",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})

	w, _, found := runAuth(t, secret, "Bearer "+signed)
	assert.Equal(t, 401, w.Code)
	assert.False(t, found)
}
