package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/avdmi/salon-booking-service/internal/api/handlers"
)

const (
	// OwnerKeyHeader заголовок с ключом владельца (email)
	OwnerKeyHeader = "X-Owner-Key"

	msgMissingOwnerKey = "отсутствует заголовок X-Owner-Key"
)

type ownerKeyContextKey struct{}

// Auth проверяет наличие заголовка X-Owner-Key и кладет ключ владельца
// в контекст запроса. Запросы без заголовка отклоняются с 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ownerKey := strings.ToLower(strings.TrimSpace(r.Header.Get(OwnerKeyHeader)))
		if ownerKey == "" {
			handlers.RespondUnauthorized(w, msgMissingOwnerKey)
			return
		}

		ctx := context.WithValue(r.Context(), ownerKeyContextKey{}, ownerKey)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetOwnerKey извлекает ключ владельца из контекста запроса
func GetOwnerKey(ctx context.Context) (string, bool) {
	ownerKey, ok := ctx.Value(ownerKeyContextKey{}).(string)
	return ownerKey, ok
}
