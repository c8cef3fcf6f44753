package handler

import (
	"net/http"

	"github.com/avc-dev/tinyapp/internal/middleware"
	"github.com/avc-dev/tinyapp/internal/model"
	"github.com/go-chi/chi/v5"
)

// Redirect учитывает посещение и перенаправляет на длинный URL.
// Вошедший пользователь считается по своему идентификатору, остальные по куке посетителя.
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	visitorID := middleware.GetVisitorIDFromContext(r.Context())
	if userID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		visitorID = userID.String()
	}

	longURL, err := h.urls.RecordVisit(r.Context(), model.Code(chi.URLParam(r, "id")), visitorID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	http.Redirect(w, r, longURL.String(), http.StatusTemporaryRedirect)
}
