package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ayms/backoffice-system/internal/model"
)

// defaultCategory подставляется, когда запрос на создание товара не
// указывает категорию.
const defaultCategory = "Sans catégorie"

type createProductRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Price       model.Amount   `json:"price"`
	Stock       model.Quantity `json:"stock"`
	Image       string         `json:"image"`
}

type updateProductRequest struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Category    *string         `json:"category"`
	Price       *model.Amount   `json:"price"`
	Stock       *model.Quantity `json:"stock"`
	Image       *string         `json:"image"`
}

func (r updateProductRequest) toUpdate() model.ProductUpdate {
	upd := model.ProductUpdate{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Image:       r.Image,
	}
	if r.Price != nil {
		price := float64(*r.Price)
		upd.Price = &price
	}
	if r.Stock != nil {
		stock := int(*r.Stock)
		upd.Stock = &stock
	}
	return upd
}

// ListProducts возвращает все товары, результат поиска по ?q= либо
// выборку по точному совпадению ?category=.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	if q := r.URL.Query().Get("q"); q != "" {
		h.writeJSON(w, http.StatusOK, h.store.SearchProducts(q))
		return
	}
	if category := r.URL.Query().Get("category"); category != "" {
		h.writeJSON(w, http.StatusOK, h.store.GetProductsByCategory(category))
		return
	}
	h.writeJSON(w, http.StatusOK, h.store.GetProducts())
}

// GetProduct возвращает товар по идентификатору.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		badRequest(w)
		return
	}
	product := h.store.GetProductByID(id)
	if product == nil {
		notFound(w)
		return
	}
	h.writeJSON(w, http.StatusOK, product)
}

// CreateProduct создаёт новый товар. Цена и остаток принимаются числом
// или строкой; нечисловые значения отклоняются до обращения к хранилищу.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w)
		return
	}

	if req.Name == "" || req.Price < 0 || req.Stock < 0 {
		badRequest(w)
		return
	}
	if req.Category == "" {
		req.Category = defaultCategory
	}

	product, err := h.store.CreateProduct(model.NewProduct{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       float64(req.Price),
		Stock:       int(req.Stock),
		Image:       req.Image,
	})
	if err != nil {
		h.internalError(w, "create product error", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, product)
}

// UpdateProduct накладывает частичное обновление на товар.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		badRequest(w)
		return
	}

	var req updateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w)
		return
	}
	if (req.Price != nil && *req.Price < 0) || (req.Stock != nil && *req.Stock < 0) {
		badRequest(w)
		return
	}

	product, err := h.store.UpdateProduct(id, req.toUpdate())
	if err != nil {
		h.internalError(w, "update product error", err)
		return
	}
	if product == nil {
		notFound(w)
		return
	}
	h.writeJSON(w, http.StatusOK, product)
}

// DeleteProduct удаляет товар.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		badRequest(w)
		return
	}

	product, err := h.store.DeleteProduct(id)
	if err != nil {
		h.internalError(w, "delete product error", err)
		return
	}
	if product == nil {
		notFound(w)
		return
	}
	h.writeJSON(w, http.StatusOK, product)
}

// BulkDeleteProducts удаляет товары по списку идентификаторов.
func (h *Handler) BulkDeleteProducts(w http.ResponseWriter, r *http.Request) {
	var req bulkIDsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w)
		return
	}

	count, err := h.store.BulkDeleteProducts(req.IDs)
	if err != nil {
		h.internalError(w, "bulk delete products error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, bulkCountResponse{Count: count})
}

type bulkStockRequest struct {
	IDs   []int64        `json:"ids"`
	Stock model.Quantity `json:"stock"`
}

// BulkUpdateStock выставляет остаток каждому товару из списка.
func (h *Handler) BulkUpdateStock(w http.ResponseWriter, r *http.Request) {
	var req bulkStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w)
		return
	}
	if req.Stock < 0 {
		badRequest(w)
		return
	}

	count, err := h.store.BulkUpdateStock(req.IDs, int(req.Stock))
	if err != nil {
		h.internalError(w, "bulk update stock error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, bulkCountResponse{Count: count})
}
