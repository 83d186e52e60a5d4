package middleware

import (
	"net/http"
	"strings"
	"time"

	"food-ordering-api/config"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// GenerateToken issues a signed, time-limited token whose subject is the
// user's email. Lifetime comes from the configured TTL only.
func GenerateToken(cfg *config.Config, email string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   email,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(cfg.TokenTTLMinutes) * time.Minute)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.GetSigningMethod(cfg.JWTAlgorithm), claims)
	return token.SignedString(cfg.JWTSecret)
}

// AuthRequired validates the bearer token, resolves its subject to a user
// record and injects the user into the context. Any failure — missing
// header, bad signature, expired token, unknown subject — is a 401.
func AuthRequired(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return cfg.JWTSecret, nil
		}, jwt.WithValidMethods([]string{cfg.JWTAlgorithm}))
		if err != nil || !token.Valid || claims.Subject == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
			c.Abort()
			return
		}

		var user models.User
		if err := db.Where("email = ?", claims.Subject).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// CapabilityRequired enforces that the authenticated user's role carries
// the given capability.
func CapabilityRequired(capability models.Capability, detail string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if !user.Role.Can(capability) {
			c.JSON(http.StatusForbidden, gin.H{"detail": detail})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser extracts the authenticated user from the context. Only valid
// below AuthRequired.
func CurrentUser(c *gin.Context) models.User {
	val, _ := c.Get("user")
	return val.(models.User)
}
