package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/yealoro/shop-cart-sub000/pkg/logger"
)

// AdminAuth guards mutating catalog routes behind the single configured
// dashboard credential. There are no user accounts; a successful login issues
// a short-lived JWT the middleware verifies.
type AdminAuth struct {
	username     string
	passwordHash string
	secret       []byte
}

// NewAdminAuth creates the admin auth guard. passwordHash is a bcrypt hash of
// the dashboard password.
func NewAdminAuth(username, passwordHash, secret string) *AdminAuth {
	return &AdminAuth{
		username:     username,
		passwordHash: passwordHash,
		secret:       []byte(secret),
	}
}

// Login handles POST /api/admin/login
func (a *AdminAuth) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	if req.Username != a.username ||
		bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(req.Password)) != nil {
		logger.Warn(r.Context()).Str("username", req.Username).Msg("Failed admin login")
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Invalid credentials"})
		return
	}

	claims := jwt.MapClaims{
		"sub":  a.username,
		"role": "admin",
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to issue token"})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]string{"token": token},
	})
}

// Middleware rejects requests without a valid admin bearer token
func (a *AdminAuth) Middleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Missing authorization token"})
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return a.secret, nil
		})
		if err != nil || !token.Valid {
			respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["role"] != "admin" {
			respondJSON(w, http.StatusForbidden, Response{Success: false, Error: "Admin access required"})
			return
		}

		next.ServeHTTP(w, r)
	}
}
