package handlers_test

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"food-ordering-api/config"
	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var errCartDown = errors.New("cart store unavailable")

// Polling bounds for asserting on asynchronous notification publishes.
const (
	waitFor = 2 * time.Second
	tick    = 10 * time.Millisecond
)

// fakeCart is an in-memory stand-in for the redis-backed cart store.
type fakeCart struct {
	mu   sync.Mutex
	data map[uint]map[string]int

	failGet   bool
	failClear bool
}

func newFakeCart() *fakeCart {
	return &fakeCart{data: make(map[uint]map[string]int)}
}

func (f *fakeCart) Add(_ context.Context, userID, dishID uint, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.data[userID] == nil {
		f.data[userID] = make(map[string]int)
	}
	f.data[userID][uitoa(dishID)] += quantity
	return nil
}

func (f *fakeCart) Get(_ context.Context, userID uint) (map[string]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet {
		return nil, errCartDown
	}
	out := make(map[string]int, len(f.data[userID]))
	for k, v := range f.data[userID] {
		out[k] = v
	}
	return out, nil
}

func (f *fakeCart) Clear(_ context.Context, userID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failClear {
		return errCartDown
	}
	delete(f.data, userID)
	return nil
}

// fakeNotifier records published notifications.
type fakeNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (f *fakeNotifier) Notify(_ context.Context, userID uint, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, uitoa(userID)+":"+message)
	return nil
}

func uitoa(n uint) string {
	return strconv.FormatUint(uint64(n), 10)
}

type testEnv struct {
	router   *gin.Engine
	db       *gorm.DB
	cfg      *config.Config
	carts    *fakeCart
	notifier *fakeNotifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A pooled second connection would see a different in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Dish{},
		&models.Order{},
		&models.OrderItem{},
	))

	cfg := &config.Config{
		JWTSecret:       []byte("test-secret"),
		JWTAlgorithm:    "HS256",
		TokenTTLMinutes: 30,
	}

	carts := newFakeCart()
	notifier := &fakeNotifier{}

	r := gin.New()
	routes.SetupRoutes(r, db, cfg, carts, notifier)

	return &testEnv{router: r, db: db, cfg: cfg, carts: carts, notifier: notifier}
}

func (e *testEnv) seedUser(t *testing.T, email, password string, role models.Role) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{Email: email, PasswordHash: string(hash), Role: role}
	require.NoError(t, e.db.Create(&user).Error)
	return user
}

func (e *testEnv) tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := middleware.GenerateToken(e.cfg, email)
	require.NoError(t, err)
	return token
}

// request sends a JSON request through the router; token and body may be
// empty.
func (e *testEnv) request(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// formRequest sends a form-encoded request, as the login endpoint expects.
func (e *testEnv) formRequest(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
