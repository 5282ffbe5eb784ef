package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mentorlink/internal/models"
)

const UserRoleKey = "userRole"

// UserGetter отдаёт пользователя по id; нужен для подмены в тестах
type UserGetter interface {
	GetUser(id string) (*models.User, error)
}

// RequireRole пропускает запрос только если роль пользователя входит
// в allowed. Роль берётся из базы, а не из токена: смена роли
// действует сразу, без перевыпуска токена.
func RequireRole(users UserGetter, allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet(UserIDKey).(uuid.UUID)

		user, err := users.GetUser(userID.String())
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			c.Abort()
			return
		}

		if !models.RoleAllowed(user.Role, allowed...) {
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
			c.Abort()
			return
		}

		c.Set(UserRoleKey, user.Role)
		c.Next()
	}
}
