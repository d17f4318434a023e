// Package auth guards the write endpoints with a single configured credential
// pair.
package auth

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/FlagBrew/local-dex/internal/models"
	"github.com/apex/log"
	"github.com/lrstanley/chix"
)

type Credentials struct {
	Username string
	Password string
}

type Authenticator interface {
	Login(ctx context.Context, creds Credentials) bool
}

// Static accepts exactly one username/password pair.
type Static struct {
	username []byte
	password []byte
}

func NewStatic(cfg *models.AdminConfig) *Static {
	return &Static{
		username: []byte(cfg.Username),
		password: []byte(cfg.Password),
	}
}

func (s *Static) Login(_ context.Context, creds Credentials) bool {
	if len(s.username) == 0 || len(s.password) == 0 {
		return false
	}

	userOK := subtle.ConstantTimeCompare([]byte(creds.Username), s.username) == 1
	passOK := subtle.ConstantTimeCompare([]byte(creds.Password), s.password) == 1
	return userOK && passOK
}

// Require rejects requests without valid HTTP basic credentials.
func Require(a Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || !a.Login(r.Context(), Credentials{Username: user, Password: pass}) {
				if ok {
					log.FromContext(r.Context()).WithField("username", user).Warn("rejected credentials")
				}
				w.Header().Set("WWW-Authenticate", `Basic realm="local-dex", charset="UTF-8"`)
				chix.JSON(w, r, http.StatusUnauthorized, chix.M{"error": "invalid or missing credentials"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
