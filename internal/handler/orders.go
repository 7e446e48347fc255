package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ayms/backoffice-system/internal/model"
)

type orderItemRequest struct {
	ProductID int64          `json:"productId"`
	Name      string         `json:"name"`
	Price     model.Amount   `json:"price"`
	Quantity  model.Quantity `json:"quantity"`
	Subtotal  model.Amount   `json:"subtotal"`
}

func orderItems(items []orderItemRequest) []model.OrderItem {
	if items == nil {
		return nil
	}
	res := make([]model.OrderItem, len(items))
	for i, it := range items {
		res[i] = model.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     float64(it.Price),
			Quantity:  int(it.Quantity),
			Subtotal:  float64(it.Subtotal),
		}
	}
	return res
}

type createOrderRequest struct {
	UserID          *int64              `json:"userId"`
	UserName        string              `json:"userName"`
	UserEmail       string              `json:"userEmail"`
	Products        []orderItemRequest  `json:"products"`
	TotalAmount     model.Amount        `json:"totalAmount"`
	Status          model.OrderStatus   `json:"status"`
	PaymentStatus   model.PaymentStatus `json:"paymentStatus"`
	ShippingAddress string              `json:"shippingAddress"`
	Notes           string              `json:"notes"`
}

type updateOrderRequest struct {
	UserName        *string              `json:"userName"`
	UserEmail       *string              `json:"userEmail"`
	Products        []orderItemRequest   `json:"products"`
	TotalAmount     *model.Amount        `json:"totalAmount"`
	Status          *model.OrderStatus   `json:"status"`
	PaymentStatus   *model.PaymentStatus `json:"paymentStatus"`
	ShippingAddress *string              `json:"shippingAddress"`
	Notes           *string              `json:"notes"`
}

func (r updateOrderRequest) toUpdate() model.OrderUpdate {
	upd := model.OrderUpdate{
		UserName:        r.UserName,
		UserEmail:       r.UserEmail,
		Products:        orderItems(r.Products),
		Status:          r.Status,
		PaymentStatus:   r.PaymentStatus,
		ShippingAddress: r.ShippingAddress,
		Notes:           r.Notes,
	}
	if r.TotalAmount != nil {
		amount := float64(*r.TotalAmount)
		upd.TotalAmount = &amount
	}
	return upd
}

// ListOrders возвращает все заказы, результат поиска по ?q= либо заказы
// пользователя по ?userId=.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	if q := r.URL.Query().Get("q"); q != "" {
		h.writeJSON(w, http.StatusOK, h.store.SearchOrders(q))
		return
	}
	if v := r.URL.Query().Get("userId"); v != "" {
		userID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			badRequest(w)
			return
		}
		h.writeJSON(w, http.StatusOK, h.store.GetOrdersByUser(userID))
		return
	}
	h.writeJSON(w, http.StatusOK, h.store.GetOrders())
}

// GetOrder возвращает заказ по идентификатору.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		badRequest(w)
		return
	}
	order := h.store.GetOrderByID(id)
	if order == nil {
		notFound(w)
		return
	}
	h.writeJSON(w, http.StatusOK, order)
}

// CreateOrder создаёт новый заказ. Сумма принимается числом или строкой.
// Статусы по умолчанию — PENDING.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w)
		return
	}

	if req.TotalAmount < 0 {
		badRequest(w)
		return
	}
	if req.Status == "" {
		req.Status = model.OrderPending
	}
	if req.PaymentStatus == "" {
		req.PaymentStatus = model.PaymentPending
	}

	order, err := h.store.CreateOrder(model.NewOrder{
		UserID:          req.UserID,
		UserName:        req.UserName,
		UserEmail:       req.UserEmail,
		Products:        orderItems(req.Products),
		TotalAmount:     float64(req.TotalAmount),
		Status:          req.Status,
		PaymentStatus:   req.PaymentStatus,
		ShippingAddress: req.ShippingAddress,
		Notes:           req.Notes,
	})
	if err != nil {
		h.internalError(w, "create order error", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, order)
}

// UpdateOrder накладывает частичное обновление на заказ.
func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		badRequest(w)
		return
	}

	var req updateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w)
		return
	}
	if req.TotalAmount != nil && *req.TotalAmount < 0 {
		badRequest(w)
		return
	}

	order, err := h.store.UpdateOrder(id, req.toUpdate())
	if err != nil {
		h.internalError(w, "update order error", err)
		return
	}
	if order == nil {
		notFound(w)
		return
	}
	h.writeJSON(w, http.StatusOK, order)
}

// DeleteOrder удаляет заказ.
func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		badRequest(w)
		return
	}

	order, err := h.store.DeleteOrder(id)
	if err != nil {
		h.internalError(w, "delete order error", err)
		return
	}
	if order == nil {
		notFound(w)
		return
	}
	h.writeJSON(w, http.StatusOK, order)
}

// BulkDeleteOrders удаляет заказы по списку идентификаторов.
func (h *Handler) BulkDeleteOrders(w http.ResponseWriter, r *http.Request) {
	var req bulkIDsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w)
		return
	}

	count, err := h.store.BulkDeleteOrders(req.IDs)
	if err != nil {
		h.internalError(w, "bulk delete orders error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, bulkCountResponse{Count: count})
}

type bulkOrderStatusRequest struct {
	IDs    []int64           `json:"ids"`
	Status model.OrderStatus `json:"status"`
}

// BulkUpdateOrderStatus выставляет статус каждому заказу из списка.
func (h *Handler) BulkUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req bulkOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w)
		return
	}
	if req.Status == "" {
		badRequest(w)
		return
	}

	count, err := h.store.BulkUpdateOrderStatus(req.IDs, req.Status)
	if err != nil {
		h.internalError(w, "bulk update orders error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, bulkCountResponse{Count: count})
}
