package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"food-ordering-api/config"
	"food-ordering-api/middleware"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testSetup(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	cfg := &config.Config{
		JWTSecret:       []byte("test-secret"),
		JWTAlgorithm:    "HS256",
		TokenTTLMinutes: 30,
	}

	r := gin.New()
	r.GET("/protected", middleware.AuthRequired(db, cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": middleware.CurrentUser(c).Email})
	})
	return r, db, cfg
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTokenRoundTrip(t *testing.T) {
	r, db, cfg := testSetup(t)
	require.NoError(t, db.Create(&models.User{Email: "alice@example.com", PasswordHash: "x", Role: models.RoleCustomer}).Error)

	token, err := middleware.GenerateToken(cfg, "alice@example.com")
	require.NoError(t, err)

	w := get(r, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice@example.com")
}

func TestAuthRequiredRejections(t *testing.T) {
	r, db, cfg := testSetup(t)
	require.NoError(t, db.Create(&models.User{Email: "alice@example.com", PasswordHash: "x", Role: models.RoleCustomer}).Error)

	expiredCfg := &config.Config{
		JWTSecret:       cfg.JWTSecret,
		JWTAlgorithm:    cfg.JWTAlgorithm,
		TokenTTLMinutes: -1,
	}
	expired, err := middleware.GenerateToken(expiredCfg, "alice@example.com")
	require.NoError(t, err)

	otherSecret := &config.Config{
		JWTSecret:       []byte("some-other-secret"),
		JWTAlgorithm:    "HS256",
		TokenTTLMinutes: 30,
	}
	forged, err := middleware.GenerateToken(otherSecret, "alice@example.com")
	require.NoError(t, err)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{})
	noSubjectStr, err := noSubject.SignedString(cfg.JWTSecret)
	require.NoError(t, err)

	unknown, err := middleware.GenerateToken(cfg, "ghost@example.com")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"missing_header", ""},
		{"garbage", "nonsense"},
		{"expired", expired},
		{"wrong_signature", forged},
		{"no_subject", noSubjectStr},
		{"unknown_user", unknown},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := get(r, tc.token)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
