package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ayms/backoffice-system/internal/model"
)

// GetSettings возвращает настройки бэкофиса.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.GetSettings())
}

type updateSettingsRequest struct {
	SiteName    *string `json:"siteName"`
	Currency    *string `json:"currency"`
	DateFormat  *string `json:"dateFormat"`
	Timezone    *string `json:"timezone"`
	Maintenance *bool   `json:"maintenance"`
}

// UpdateSettings накладывает частичное обновление на настройки.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w)
		return
	}

	settings, err := h.store.UpdateSettings(model.SettingsUpdate{
		SiteName:    req.SiteName,
		Currency:    req.Currency,
		DateFormat:  req.DateFormat,
		Timezone:    req.Timezone,
		Maintenance: req.Maintenance,
	})
	if err != nil {
		h.internalError(w, "update settings error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, settings)
}

// GetAnalytics возвращает сводные счётчики.
func (h *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.GetAnalytics())
}

type updateAnalyticsRequest struct {
	TotalUsers    *int     `json:"totalUsers"`
	TotalProducts *int     `json:"totalProducts"`
	TotalOrders   *int     `json:"totalOrders"`
	TotalRevenue  *float64 `json:"totalRevenue"`
	MonthlyGrowth *float64 `json:"monthlyGrowth"`
}

// UpdateAnalytics накладывает частичное обновление на сводные счётчики.
func (h *Handler) UpdateAnalytics(w http.ResponseWriter, r *http.Request) {
	var req updateAnalyticsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w)
		return
	}

	analytics, err := h.store.UpdateAnalytics(model.AnalyticsUpdate{
		TotalUsers:    req.TotalUsers,
		TotalProducts: req.TotalProducts,
		TotalOrders:   req.TotalOrders,
		TotalRevenue:  req.TotalRevenue,
		MonthlyGrowth: req.MonthlyGrowth,
	})
	if err != nil {
		h.internalError(w, "update analytics error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, analytics)
}

// DashboardStats возвращает сводку для главной страницы.
func (h *Handler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.GetDashboardStats())
}

// MonthlyStats возвращает статистику заказов по месяцам.
func (h *Handler) MonthlyStats(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.GetMonthlyStats())
}
