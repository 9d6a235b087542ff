package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/avdmi/salon-booking-service/internal/api/handlers"
)

const (
	// AdminKeyHeader заголовок с административным ключом
	AdminKeyHeader = "X-Admin-Key"

	msgInvalidAdminKey = "некорректный административный ключ"
)

// Admin пропускает только запросы с корректным административным ключом
func Admin(adminKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(AdminKeyHeader)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(adminKey)) != 1 {
				handlers.RespondForbidden(w, msgInvalidAdminKey)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
