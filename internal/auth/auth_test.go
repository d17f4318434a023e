package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/FlagBrew/local-dex/internal/models"
	"github.com/stretchr/testify/require"
)

func TestStaticLogin(t *testing.T) {
	a := NewStatic(&models.AdminConfig{Username: "admin", Password: "hunter2"})
	ctx := context.Background()

	require.True(t, a.Login(ctx, Credentials{Username: "admin", Password: "hunter2"}))
	require.False(t, a.Login(ctx, Credentials{Username: "admin", Password: "hunter3"}))
	require.False(t, a.Login(ctx, Credentials{Username: "Admin", Password: "hunter2"}))
	require.False(t, a.Login(ctx, Credentials{}))
}

func TestStaticLoginWithoutConfiguredPair(t *testing.T) {
	a := NewStatic(&models.AdminConfig{})
	require.False(t, a.Login(context.Background(), Credentials{}))
}

func TestRequire(t *testing.T) {
	a := NewStatic(&models.AdminConfig{Username: "admin", Password: "hunter2"})
	h := Require(a)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))

	req = httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	req.SetBasicAuth("admin", "nope")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	req.SetBasicAuth("admin", "hunter2")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
}
