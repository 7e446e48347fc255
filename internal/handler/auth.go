package handler

import (
	"encoding/json"
	"net/http"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login выполняет аутентификацию пользователя и установку cookie сессии.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w)
		return
	}

	if req.Username == "" || req.Password == "" {
		badRequest(w)
		return
	}

	user, err := h.store.Login(req.Username, req.Password)
	if err != nil {
		h.internalError(w, "login error", err)
		return
	}
	if user == nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	h.authMiddleware.SetAuthCookie(w, user.ID)
	h.writeJSON(w, http.StatusOK, user)
}

// Logout очищает запись сессии и cookie авторизации.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Logout(); err != nil {
		h.internalError(w, "logout error", err)
		return
	}
	h.authMiddleware.ClearAuthCookie(w)
	w.WriteHeader(http.StatusOK)
}

// Me возвращает запись текущего пользователя.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.CurrentUser()
	if err != nil {
		h.internalError(w, "current user error", err)
		return
	}
	if user == nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	h.writeJSON(w, http.StatusOK, user)
}
