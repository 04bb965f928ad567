package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"arunika-backend/models"
	"arunika-backend/token"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SessionCookie adalah nama cookie yang membawa token sesi.
const SessionCookie = "session"

// userKey adalah kunci context untuk pengguna yang sudah terverifikasi.
const userKey = "user"

// ExtractToken mengambil token dari header Authorization (Bearer) atau,
// jika tidak ada, dari cookie sesi. String kosong berarti tanpa token.
func ExtractToken(c *gin.Context) string {
	authz := c.GetHeader("Authorization")
	if strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

// Authenticate memverifikasi token sesi lalu memuat ulang pengguna dari
// database. Pengguna yang dinonaktifkan langsung kehilangan akses
// meskipun tokennya belum kedaluwarsa.
func Authenticate(tokens *token.Maker, db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ExtractToken(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		payload, err := tokens.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		objectID, err := primitive.ObjectIDFromHex(payload.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var user models.User
		err = db.Collection("users").FindOne(ctx, bson.M{"_id": objectID}).Decode(&user)
		if err != nil || !user.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		user.Password = ""

		c.Set(userKey, &user)
		c.Next()
	}
}

// RequireAdmin menolak pengguna yang bukan admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}
		if user.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// CurrentUser mengambil pengguna terverifikasi dari context, atau nil.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(userKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
