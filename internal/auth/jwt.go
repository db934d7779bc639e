package auth

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrNoClaims     = errors.New("no claims in context")
)

type contextKey string

const claimsKey contextKey = "bridgeClaims"

// BridgeClaims identifies a transport bridge allowed to push messages
// through the gateway.
type BridgeClaims struct {
	BridgeID string `json:"bridge_id"`
	jwt.RegisteredClaims
}

// Init loads the gateway signing secret. Panics when it is missing so the
// process cannot start with an open gateway.
func Init() {
	secret := os.Getenv("GATEWAY_JWT_SECRET")
	if secret == "" {
		panic("GATEWAY_JWT_SECRET must be set")
	}
	jwtSecret = []byte(secret)
}

// GenerateToken issues a bridge token, used by the pairing tooling.
func GenerateToken(bridgeID string, duration time.Duration) (string, error) {
	claims := BridgeClaims{
		BridgeID: bridgeID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ValidateToken parses and verifies a bridge token.
func ValidateToken(tokenStr string) (*BridgeClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &BridgeClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*BridgeClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Middleware rejects gateway requests that do not carry a valid bridge token.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tokenStr := strings.TrimPrefix(header, "Bearer ")
		if tokenStr == "" || tokenStr == header {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		claims, err := ValidateToken(tokenStr)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetBridgeClaimsFromContext returns the claims stored by Middleware.
func GetBridgeClaimsFromContext(ctx context.Context) (*BridgeClaims, error) {
	claims, ok := ctx.Value(claimsKey).(*BridgeClaims)
	if !ok {
		return nil, ErrNoClaims
	}
	return claims, nil
}
