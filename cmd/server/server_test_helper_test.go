package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"club-site.backend/internal/config"
	"club-site.backend/internal/infrastructure/database"
	"club-site.backend/pkg/redis"
)

const (
	testAdminUser = "admin"
	testAdminPass = "correct horse"
	testOrigin    = "http://localhost:5173"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPass), bcrypt.MinCost)
	require.NoError(t, err)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	return &config.Config{
		Server: config.ServerConfig{Port: "0", Env: "test", BodyLimit: 1 << 20},
		Database: config.DatabaseConfig{
			Driver:  database.DriverSQLite,
			DSN:     fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano()),
			Timeout: 5 * time.Second,
		},
		Admin:     config.AdminConfig{User: testAdminUser, PassHash: string(hash)},
		JWT:       config.JWTConfig{Secret: "test-secret", Expiry: time.Hour},
		CORS:      config.CORSConfig{Origin: testOrigin},
		RateLimit: config.RateLimitConfig{Max: 1000, Window: time.Minute},
	}
}

func useMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	prev := redis.GetClient()
	c := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	redis.SetClient(c)
	t.Cleanup(func() {
		_ = c.Close()
		redis.SetClient(prev)
	})
	return mr
}

// newTestServer wires the real router over an in-memory database.
func newTestServer(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(cfg.Database)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(db))

	deps, _ := buildDeps(cfg, db)
	return newRouter(cfg, deps)
}

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

type client struct {
	t     *testing.T
	r     http.Handler
	token string
}

func (c *client) do(method, path string, body any) (*httptest.ResponseRecorder, apiResponse) {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "192.0.2.10:5000"
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)

	var resp apiResponse
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w, resp
}

func (c *client) login() {
	c.t.Helper()
	w, resp := c.do(http.MethodPost, "/api/auth/login", map[string]string{
		"username": testAdminUser,
		"password": testAdminPass,
	})
	require.Equal(c.t, http.StatusOK, w.Code, w.Body.String())
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(c.t, json.Unmarshal(resp.Data, &data))
	c.token = data.Token
}

func decodeInto[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}
