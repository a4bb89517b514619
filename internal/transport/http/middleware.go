package http

import (
	"net/http"
	"strings"

	"restaurant-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authClaims struct {
	ID           string `json:"id"`
	Role         string `json:"role"`
	RestaurantID string `json:"restaurantId,omitempty"`
	jwt.RegisteredClaims
}

// Authenticate разбирает Bearer-токен, если он есть, и кладёт актора в
// контекст запроса. Отсутствие токена не ошибка: гостевые запросы проходят
// дальше анонимно, а обязательность входа навешивается LoggedInRequired.
func Authenticate(secret []byte, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authz := c.GetHeader("Authorization")
		if authz == "" {
			c.Next()
			return
		}
		raw, ok := ExtractBearerToken(authz)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, NewUnauthorizedError("invalid Authorization header"))
			return
		}

		var claims authClaims
		token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			log.Warn("Невалидный токен", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, NewUnauthorizedError("invalid token"))
			return
		}

		uid, err := uuid.Parse(claims.ID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, NewUnauthorizedError("invalid user id in token"))
			return
		}

		actor := service.Actor{ID: uid, Role: service.Role(claims.Role)}
		if claims.RestaurantID != "" {
			if rid, err := uuid.Parse(claims.RestaurantID); err == nil {
				actor.RestaurantID = &rid
			}
		}

		ctx := service.WithActor(c.Request.Context(), actor)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// LoggedInRequired пропускает только аутентифицированные запросы.
func LoggedInRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := service.ActorFromContext(c.Request.Context()); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, NewUnauthorizedError("you are not logged in"))
			return
		}
		c.Next()
	}
}

// RoleRequired пропускает акторов с ролью не ниже required.
func RoleRequired(required service.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := service.ActorFromContext(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, NewUnauthorizedError("you are not logged in"))
			return
		}
		if !actor.Role.AtLeast(required) {
			c.AbortWithStatusJSON(http.StatusForbidden, NewForbiddenError("you are not "+string(required)))
			return
		}
		c.Next()
	}
}

// ExtractBearerToken извлекает токен из заголовка Authorization.
func ExtractBearerToken(authz string) (string, bool) {
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	t := strings.TrimSpace(parts[1])
	if t == "" {
		return "", false
	}
	return t, true
}
