package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/artemkls/HMS-BookingService/internal/api/handlers"
)

// RoleAdmin роль администратора в claims токена
const RoleAdmin = "admin"

type contextKey string

const (
	userIDKey contextKey = "auth.userID"
	roleKey   contextKey = "auth.role"
)

// Claims JWT claims сессии клиента
type Claims struct {
	UserID int64  `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Auth middleware аутентификации по Bearer токену.
// Кладет идентификатор пользователя и роль в контекст запроса.
type Auth struct {
	secret []byte
}

// NewAuth создает middleware аутентификации
func NewAuth(secret string) *Auth {
	return &Auth{secret: []byte(secret)}
}

// Require проверяет токен и отклоняет запрос без валидной сессии
func (a *Auth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := a.parse(r)
		if !ok {
			handlers.RespondUnauthorized(w, "missing or invalid access token")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), claims.UserID, claims.Role)))
	})
}

// RequireAdmin проверяет токен и требует роль администратора
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return a.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdmin(r.Context()) {
			handlers.RespondForbidden(w, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	}))
}

func (a *Auth) parse(r *http.Request) (*Claims, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return nil, false
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return a.secret, nil
	})
	if err != nil || !parsed.Valid || claims.UserID <= 0 {
		return nil, false
	}

	return claims, true
}

// WithIdentity кладет идентификатор пользователя и роль в контекст запроса
func WithIdentity(ctx context.Context, userID int64, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, roleKey, role)
}

// GetUserID возвращает идентификатор пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// IsAdmin возвращает true, если запрос выполнен администратором
func IsAdmin(ctx context.Context) bool {
	role, ok := ctx.Value(roleKey).(string)
	return ok && role == RoleAdmin
}
