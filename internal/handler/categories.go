package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ayms/backoffice-system/internal/model"
)

type createCategoryRequest struct {
	Name string `json:"name"`
}

type updateCategoryRequest struct {
	Name *string `json:"name"`
}

// ListCategories возвращает все категории.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.GetCategories())
}

// GetCategory возвращает категорию по идентификатору.
func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		badRequest(w)
		return
	}
	category := h.store.GetCategoryByID(id)
	if category == nil {
		notFound(w)
		return
	}
	h.writeJSON(w, http.StatusOK, category)
}

// CreateCategory создаёт новую категорию.
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w)
		return
	}
	if req.Name == "" {
		badRequest(w)
		return
	}

	category, err := h.store.CreateCategory(model.NewCategory{Name: req.Name})
	if err != nil {
		h.internalError(w, "create category error", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, category)
}

// UpdateCategory накладывает частичное обновление на категорию.
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		badRequest(w)
		return
	}

	var req updateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w)
		return
	}

	category, err := h.store.UpdateCategory(id, model.CategoryUpdate{Name: req.Name})
	if err != nil {
		h.internalError(w, "update category error", err)
		return
	}
	if category == nil {
		notFound(w)
		return
	}
	h.writeJSON(w, http.StatusOK, category)
}

// DeleteCategory удаляет категорию; её товары переводятся в категорию
// по умолчанию внутри хранилища.
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		badRequest(w)
		return
	}

	category, err := h.store.DeleteCategory(id)
	if err != nil {
		h.internalError(w, "delete category error", err)
		return
	}
	if category == nil {
		notFound(w)
		return
	}
	h.writeJSON(w, http.StatusOK, category)
}
