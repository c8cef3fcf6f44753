package handler

import (
	"net/http"

	"github.com/avc-dev/tinyapp/internal/model"
	"github.com/go-chi/chi/v5"
)

// CreateLink создает короткую ссылку из поля формы longURL
func (h *Handler) CreateLink(w http.ResponseWriter, r *http.Request) {
	link, err := h.urls.CreateLink(r.Context(), h.getUserIDFromRequest(r), model.URL(r.PostFormValue("longURL")))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, h.toLinkResponse(link))
}

// GetLink возвращает ссылку вместе с историей посещений
func (h *Handler) GetLink(w http.ResponseWriter, r *http.Request) {
	link, err := h.urls.GetLink(r.Context(), model.Code(chi.URLParam(r, "id")), h.getUserIDFromRequest(r))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, h.toLinkDetailsResponse(link))
}

// UpdateLink меняет длинный URL ссылки, статистика сбрасывается
func (h *Handler) UpdateLink(w http.ResponseWriter, r *http.Request) {
	link, err := h.urls.UpdateLink(
		r.Context(),
		model.Code(chi.URLParam(r, "id")),
		h.getUserIDFromRequest(r),
		model.URL(r.PostFormValue("longURL")),
	)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, h.toLinkResponse(link))
}

// DeleteLink удаляет одну ссылку
func (h *Handler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	err := h.urls.DeleteLink(r.Context(), model.Code(chi.URLParam(r, "id")), h.getUserIDFromRequest(r))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListLinks возвращает ссылки пользователя, 204 если их нет
func (h *Handler) ListLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.urls.ListLinksForUser(r.Context(), h.getUserIDFromRequest(r))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if len(links) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	response := make([]linkResponse, len(links))
	for i, link := range links {
		response[i] = h.toLinkResponse(link)
	}
	h.writeJSON(w, http.StatusOK, response)
}
