package handler

import (
	"net/http"

	"go.uber.org/zap"
)

// Register регистрирует пользователя и сразу открывает сессию
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.Register(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	token, err := h.auth.StartSession(r.Context(), user.ID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	http.SetCookie(w, h.cookies.SessionCookie(token))
	h.writeJSON(w, http.StatusCreated, userResponse{ID: user.ID.String(), Email: user.Email})
}

// Login проверяет учетные данные и открывает сессию
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("email")

	userID, err := h.auth.Login(r.Context(), email, r.PostFormValue("password"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	token, err := h.auth.StartSession(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	http.SetCookie(w, h.cookies.SessionCookie(token))
	h.writeJSON(w, http.StatusOK, userResponse{ID: userID.String(), Email: email})
}

// Logout закрывает сессию и удаляет куку
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.cfg.Session.CookieName); err == nil {
		if err := h.auth.Logout(r.Context(), cookie.Value); err != nil {
			h.logger.Warn("failed to clear session binding", zap.Error(err))
		}
	}

	http.SetCookie(w, h.cookies.ClearSessionCookie())
	w.WriteHeader(http.StatusNoContent)
}
