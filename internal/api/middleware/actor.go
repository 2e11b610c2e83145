package middleware

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// Заголовки, которые выставляет шлюз после аутентификации
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
	HeaderMasterID = "X-Master-ID"
)

const msgMasterIDRequired = "для роли мастера нужен заголовок X-Master-ID"

// Actor определяет пользователя по заголовкам шлюза. Без заголовков это гость.
func Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := domain.Actor{
			UserID: strings.TrimSpace(r.Header.Get(HeaderUserID)),
			Role:   domain.ParseRole(strings.ToLower(strings.TrimSpace(r.Header.Get(HeaderUserRole)))),
		}
		if actor.Role == domain.RoleMaster {
			actor.MasterID = strings.TrimSpace(r.Header.Get(HeaderMasterID))
			if actor.MasterID == "" {
				handlers.RespondBadRequest(w, msgMasterIDRequired)
				return
			}
		}
		next.ServeHTTP(w, r.WithContext(handlers.WithActor(r.Context(), actor)))
	})
}
