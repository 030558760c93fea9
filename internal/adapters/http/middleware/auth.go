package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/logging"
)

const bearerScheme = "Bearer"

// clockSkew is the leeway allowed on exp and nbf.
const clockSkew = 30 * time.Second

type userIDKey struct{}

// AuthConfig configures bearer token verification.
type AuthConfig struct {
	// Secret is the HS256 signing key.
	Secret string

	// Issuer requires a matching iss claim when set.
	Issuer string
}

// WithUserID returns a context carrying the authenticated user id.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the authenticated user id, if any.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok
}

// Authenticate returns middleware that requires an HS256 bearer token whose
// subject is the caller's numeric user id. The id is stored in the request
// context and added to the request logger. Missing or invalid tokens get a
// 401 problem response; the reason is logged at debug level only.
func Authenticate(cfg AuthConfig) func(http.Handler) http.Handler {
	secret := []byte(cfg.Secret)
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(clockSkew),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	parser := jwt.NewParser(opts...)

	keyFunc := func(*jwt.Token) (any, error) { return secret, nil }

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			userID, err := authenticate(r, parser, keyFunc)
			if err != nil {
				logging.FromContext(ctx).DebugContext(ctx, "authentication failed", slog.Any("error", err))
				w.Header().Set("WWW-Authenticate", bearerScheme+` error="invalid_token"`)
				dto.WriteErrorResponse(w, r, fmt.Errorf("%w: invalid or missing bearer token", domain.ErrUnauthorized))
				return
			}

			ctx = WithUserID(ctx, userID)
			ctx = logging.With(ctx, slog.Int64("user_id", userID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func authenticate(r *http.Request, parser *jwt.Parser, keyFunc jwt.Keyfunc) (int64, error) {
	raw, err := bearerToken(r.Header.Get("Authorization"))
	if err != nil {
		return 0, err
	}

	var claims jwt.RegisteredClaims
	if _, err := parser.ParseWithClaims(raw, &claims, keyFunc); err != nil {
		return 0, fmt.Errorf("parsing token: %w", err)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("subject %q is not a user id", claims.Subject)
	}
	return userID, nil
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errors.New("authorization header missing")
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) || strings.TrimSpace(token) == "" {
		return "", errors.New("authorization header is not a bearer token")
	}
	return strings.TrimSpace(token), nil
}
