package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"mentorlink/pkg/auth"
)

type fakeRevoker struct {
	entries map[string]time.Duration
	err     error
}

func newFakeRevoker() *fakeRevoker {
	return &fakeRevoker{entries: make(map[string]time.Duration)}
}

func (f *fakeRevoker) Set(_ context.Context, key string, _ interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.entries[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func logoutRouter(jwtMgr *auth.JWTManager, revoker TokenRevoker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(nil, jwtMgr, revoker)

	r := gin.New()
	r.POST("/api/auth/logout", h.Logout)
	return r
}

func doLogout(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestLogoutBlacklistsTokenUntilExpiry(t *testing.T) {
	req := require.New(t)
	jwtMgr := auth.NewJWTManager("secret", time.Hour)
	token, err := jwtMgr.Generate(uuid.New())
	req.NoError(err)

	revoker := newFakeRevoker()
	r := logoutRouter(jwtMgr, revoker)

	rec := doLogout(r, "Bearer "+token)
	req.Equal(http.StatusOK, rec.Code)

	ttl, ok := revoker.entries["blacklist:"+token]
	req.True(ok)
	req.Greater(ttl, time.Duration(0))
	req.LessOrEqual(ttl, time.Hour)
}

func TestLogoutFailsWhenBlacklistWriteFails(t *testing.T) {
	req := require.New(t)
	jwtMgr := auth.NewJWTManager("secret", time.Hour)
	token, err := jwtMgr.Generate(uuid.New())
	req.NoError(err)

	revoker := newFakeRevoker()
	revoker.err = errors.New("redis unreachable")
	r := logoutRouter(jwtMgr, revoker)

	// Токен не попал в черный список — говорить клиенту "ок" нельзя
	rec := doLogout(r, "Bearer "+token)
	req.Equal(http.StatusInternalServerError, rec.Code)
	req.Empty(revoker.entries)
}

func TestLogoutRejectsBadRequests(t *testing.T) {
	jwtMgr := auth.NewJWTManager("secret", time.Hour)
	r := logoutRouter(jwtMgr, newFakeRevoker())

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusBadRequest},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, doLogout(r, tt.header).Code)
		})
	}
}
