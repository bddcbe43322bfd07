package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

// adminTokenHeader заголовок с админским токеном
const adminTokenHeader = "X-Admin-Token"

// AdminAuth проверяет админский токен для привилегированных маршрутов
// (управление календарем, лимитами, выгрузки)
func AdminAuth(token string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(adminTokenHeader)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				handlers.RespondUnauthorized(w, "требуется админский токен")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
