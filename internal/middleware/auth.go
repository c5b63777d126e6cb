package middleware

import (
	"context"
	"fruit_slots/pkg/resp"
	"fruit_slots/pkg/token"
	"net/http"
	"strings"
)

type ctxKey struct{}

const tokenQueryParam = "token"

// Auth проверяет access token и кладет ID игровой сессии в контекст.
// Токен берется из заголовка Authorization: Bearer, а для websocket - из query параметра token.
func Auth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				resp.WriteError(w, http.StatusUnauthorized, "missing access token")
				return
			}

			claims, err := token.VerifyToken(raw, secretKey)
			if err != nil {
				resp.WriteError(w, http.StatusUnauthorized, "invalid access token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), claims.ID)))
		})
	}
}

// WithSessionID кладет ID сессии в контекст
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// SessionIDFromContext достает ID сессии из контекста
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, tok, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(tok)
		}
		return ""
	}
	return r.URL.Query().Get(tokenQueryParam)
}
