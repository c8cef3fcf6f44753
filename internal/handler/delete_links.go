package handler

import (
	"encoding/json"
	"net/http"

	"github.com/avc-dev/tinyapp/internal/model"
	"go.uber.org/zap"
)

// DeleteLinks удаляет несколько ссылок пользователя, тело запроса JSON массив кодов
func (h *Handler) DeleteLinks(w http.ResponseWriter, r *http.Request) {
	var codes []string
	if err := json.NewDecoder(r.Body).Decode(&codes); err != nil {
		h.logger.Debug("failed to decode request body", zap.Error(err))
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "body must be a JSON array of codes"})
		return
	}

	if len(codes) == 0 {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "empty codes list"})
		return
	}

	modelCodes := make([]model.Code, len(codes))
	for i, code := range codes {
		modelCodes[i] = model.Code(code)
	}

	deleted, err := h.urls.DeleteLinks(r.Context(), modelCodes, h.getUserIDFromRequest(r))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response := deleteLinksResponse{Deleted: make([]string, len(deleted))}
	for i, code := range deleted {
		response.Deleted[i] = code.String()
	}
	h.writeJSON(w, http.StatusOK, response)
}
