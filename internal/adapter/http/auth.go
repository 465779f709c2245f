package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminRole is the role claim required on admin routes.
const AdminRole = "admin"

var ErrAuthDisabled = errors.New("admin authentication is not configured")

// AdminClaims are the claims of an admin bearer token.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AdminAuth issues and verifies HS256 admin tokens. Without a secret every
// admin request is refused.
type AdminAuth struct {
	secret []byte
	issuer string
	ttl    time.Duration
	logger *slog.Logger
}

func NewAdminAuth(secret, issuer string, ttl time.Duration, logger *slog.Logger) *AdminAuth {
	return &AdminAuth{secret: []byte(secret), issuer: issuer, ttl: ttl, logger: logger}
}

// IssueToken signs an admin token for subject.
func (a *AdminAuth) IssueToken(subject string, now time.Time) (string, error) {
	if len(a.secret) == 0 {
		return "", ErrAuthDisabled
	}
	claims := AdminClaims{
		Role: AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Verify parses token and checks signature, expiry, issuer and role.
func (a *AdminAuth) Verify(token string) (*AdminClaims, error) {
	if len(a.secret) == 0 {
		return nil, ErrAuthDisabled
	}
	claims := &AdminClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(a.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if claims.Role != AdminRole {
		return nil, errors.New("token lacks admin role")
	}
	return claims, nil
}

// RequireAdmin rejects requests without a valid admin bearer token.
func (a *AdminAuth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"}, a.logger)
			return
		}
		claims, err := a.Verify(token)
		if errors.Is(err, ErrAuthDisabled) {
			writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()}, a.logger)
			return
		}
		if err != nil {
			a.logger.Warn("admin token rejected", slog.Any("error", err))
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid token"}, a.logger)
			return
		}
		a.logger.Info("admin request", slog.String("subject", claims.Subject), slog.String("path", r.URL.Path))
		next.ServeHTTP(w, r)
	})
}
