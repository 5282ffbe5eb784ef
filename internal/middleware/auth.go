package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"mentorlink/pkg/auth"
)

const UserIDKey = "userID"

// TokenBlacklist проверяет, не отозван ли токен. Реализуется
// *redis.Client, в тестах — двойником.
type TokenBlacklist interface {
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

// AuthMiddleware проверяет JWT токен
func AuthMiddleware(jwtManager *auth.JWTManager, blacklist TokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractTokenFromHeader(c.Request)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			c.Abort()
			return
		}

		authorize(c, token, jwtManager, blacklist)
	}
}

// WSAuthMiddleware проверяет токен перед websocket upgrade.
// Браузерные клиенты не могут выставить заголовок на upgrade-запросе,
// поэтому токен принимается и через query-параметр.
func WSAuthMiddleware(jwtManager *auth.JWTManager, blacklist TokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				token = parts[1]
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		authorize(c, token, jwtManager, blacklist)
	}
}

func authorize(c *gin.Context, token string, jwtManager *auth.JWTManager, blacklist TokenBlacklist) {
	// Проверяем, не в черном списке ли токен
	exists, err := blacklist.Exists(context.Background(), "blacklist:"+token).Result()
	if err != nil || exists > 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token is blacklisted"})
		c.Abort()
		return
	}

	claims, err := jwtManager.Verify(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		c.Abort()
		return
	}

	c.Set(UserIDKey, claims.UserID)
	c.Next()
}
