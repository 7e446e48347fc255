package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ayms/backoffice-system/internal/model"
)

type createUserRequest struct {
	Username  string           `json:"username"`
	Password  string           `json:"password"`
	Email     string           `json:"email"`
	FirstName string           `json:"firstName"`
	LastName  string           `json:"lastName"`
	Role      model.Role       `json:"role"`
	Status    model.UserStatus `json:"status"`
	Avatar    string           `json:"avatar"`
}

type updateUserRequest struct {
	Password  *string           `json:"password"`
	Email     *string           `json:"email"`
	FirstName *string           `json:"firstName"`
	LastName  *string           `json:"lastName"`
	Role      *model.Role       `json:"role"`
	Status    *model.UserStatus `json:"status"`
	Avatar    *string           `json:"avatar"`
}

func (r updateUserRequest) toUpdate() model.UserUpdate {
	return model.UserUpdate{
		Password:  r.Password,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Role:      r.Role,
		Status:    r.Status,
		Avatar:    r.Avatar,
	}
}

// ListUsers возвращает всех пользователей либо результат поиска по ?q=.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	if q := r.URL.Query().Get("q"); q != "" {
		h.writeJSON(w, http.StatusOK, h.store.SearchUsers(q))
		return
	}
	h.writeJSON(w, http.StatusOK, h.store.GetUsers())
}

// GetUser возвращает пользователя по идентификатору.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		badRequest(w)
		return
	}
	user := h.store.GetUserByID(id)
	if user == nil {
		notFound(w)
		return
	}
	h.writeJSON(w, http.StatusOK, user)
}

// CreateUser создаёт нового пользователя.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w)
		return
	}

	if req.Username == "" || req.Password == "" {
		badRequest(w)
		return
	}

	user, err := h.store.CreateUser(model.NewUser{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		Status:    req.Status,
		Avatar:    req.Avatar,
	})
	if err != nil {
		h.internalError(w, "create user error", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, user)
}

// UpdateUser накладывает частичное обновление на пользователя.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		badRequest(w)
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w)
		return
	}

	user, err := h.store.UpdateUser(id, req.toUpdate())
	if err != nil {
		h.internalError(w, "update user error", err)
		return
	}
	if user == nil {
		notFound(w)
		return
	}
	h.writeJSON(w, http.StatusOK, user)
}

// DeleteUser удаляет пользователя. Защищённый admin отдаётся как 404.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		badRequest(w)
		return
	}

	user, err := h.store.DeleteUser(id)
	if err != nil {
		h.internalError(w, "delete user error", err)
		return
	}
	if user == nil {
		notFound(w)
		return
	}
	h.writeJSON(w, http.StatusOK, user)
}

// BulkDeleteUsers удаляет пользователей по списку идентификаторов.
func (h *Handler) BulkDeleteUsers(w http.ResponseWriter, r *http.Request) {
	var req bulkIDsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w)
		return
	}

	count, err := h.store.BulkDeleteUsers(req.IDs)
	if err != nil {
		h.internalError(w, "bulk delete users error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, bulkCountResponse{Count: count})
}

type bulkUserStatusRequest struct {
	IDs    []int64          `json:"ids"`
	Status model.UserStatus `json:"status"`
}

// BulkUpdateUserStatus выставляет статус каждому пользователю из списка.
func (h *Handler) BulkUpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	var req bulkUserStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w)
		return
	}
	if req.Status == "" {
		badRequest(w)
		return
	}

	count, err := h.store.BulkUpdateUsers(req.IDs, model.UserUpdate{Status: &req.Status})
	if err != nil {
		h.internalError(w, "bulk update users error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, bulkCountResponse{Count: count})
}
