package jwtmw

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog_backend/internal/platform/security"
)

// TestMain はテスト実行前にGinをテストモードに設定します。
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockAuthenticator はAuthenticatorインターフェースのモック実装です。
type mockAuthenticator struct {
	AuthenticateTokenFunc func(ctx context.Context, token string) (*security.Identity, error)
	calls                 int
}

func (m *mockAuthenticator) AuthenticateToken(ctx context.Context, token string) (*security.Identity, error) {
	m.calls++
	if m.AuthenticateTokenFunc != nil {
		return m.AuthenticateTokenFunc(ctx, token)
	}
	return nil, errors.New("not configured")
}

// runAuthenticate はミドルウェアを実行し、ハンドラーから見えたIdentityを返します。
func runAuthenticate(t *testing.T, auth Authenticator, header string) (*security.Identity, bool, *httptest.ResponseRecorder) {
	t.Helper()

	var (
		got    *security.Identity
		gotOK  bool
		router = gin.New()
	)
	router.Use(Authenticate(auth))
	router.GET("/", func(c *gin.Context) {
		got, gotOK = security.CurrentIdentity(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	router.ServeHTTP(w, req)
	return got, gotOK, w
}

// TestAuthenticate_NoBearerToken はBearerトークンがない場合に匿名のまま通過することを検証します。
func TestAuthenticate_NoBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		authHeader string
	}{
		{"no header", ""},
		{"basic auth", "Basic dXNlcjpwYXNz"},
		{"bearer lowercase", "bearer token123"},
		{"no space after Bearer", "Bearertoken123"},
		{"empty bearer", "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			auth := &mockAuthenticator{}
			_, ok, w := runAuthenticate(t, auth, tt.authHeader)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.False(t, ok, "identity should not be set")
			assert.Zero(t, auth.calls, "authenticator should not be called")
		})
	}
}

// TestAuthenticate_InvalidToken は不正なトークンでも匿名として通過することを検証します（拒否は認可ポリシーの責務）。
func TestAuthenticate_InvalidToken(t *testing.T) {
	t.Parallel()

	auth := &mockAuthenticator{
		AuthenticateTokenFunc: func(ctx context.Context, token string) (*security.Identity, error) {
			return nil, fmt.Errorf("invalid token: %w", security.ErrUnauthenticated)
		},
	}
	_, ok, w := runAuthenticate(t, auth, "Bearer broken")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, ok)
	assert.Equal(t, 1, auth.calls)
}

// TestAuthenticate_AuthenticatorFailure は認証基盤の障害が匿名扱いにならず500になることを検証します。
func TestAuthenticate_AuthenticatorFailure(t *testing.T) {
	t.Parallel()

	auth := &mockAuthenticator{
		AuthenticateTokenFunc: func(ctx context.Context, token string) (*security.Identity, error) {
			return nil, errors.New("dial tcp: connection refused")
		},
	}

	router := gin.New()
	router.Use(Authenticate(auth))
	router.Use(security.Authorize(security.DefaultPolicy()))
	reached := false
	router.POST("/categories", func(c *gin.Context) {
		reached = true
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/categories", nil)
	req.Header.Set("Authorization", "Bearer token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":"INTERNAL","error":"internal server error"}`, w.Body.String())
	assert.False(t, reached)
	assert.Equal(t, 1, auth.calls)
}

// TestAuthenticate_ValidToken は有効なトークンでIdentityがリクエストコンテキストに設定されることを検証します。
func TestAuthenticate_ValidToken(t *testing.T) {
	t.Parallel()

	want := &security.Identity{UserID: uuid.New(), Email: "user@example.com", Authorities: []string{security.AuthorityUser}}
	auth := &mockAuthenticator{
		AuthenticateTokenFunc: func(ctx context.Context, token string) (*security.Identity, error) {
			if token != "good-token" {
				return nil, errors.New("unexpected token " + token)
			}
			return want, nil
		},
	}
	got, ok, w := runAuthenticate(t, auth, "Bearer good-token")

	assert.Equal(t, http.StatusOK, w.Code)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	tok, ok := BearerToken("Bearer abc.def.ghi")
	assert.True(t, ok)
	assert.Equal(t, "abc.def.ghi", tok)

	_, ok = BearerToken("Token abc")
	assert.False(t, ok)
}
