package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/ayms/backoffice-system/internal/store"
)

// ExportData отдаёт полный документ как JSON-вложение с датированным
// именем файла.
func (h *Handler) ExportData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+h.store.ExportFilename()+`"`)

	if err := h.store.Export(w); err != nil {
		h.logger.Error("export error", zap.Error(err))
	}
}

// ImportData заменяет документ целиком телом запроса. Некорректные данные
// отклоняются без изменения текущего состояния.
func (h *Handler) ImportData(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	if err := h.store.Import(r.Body); err != nil {
		if errors.Is(err, store.ErrMalformedDocument) {
			http.Error(w, http.StatusText(http.StatusUnprocessableEntity), http.StatusUnprocessableEntity)
			return
		}
		h.internalError(w, "import error", err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// SeedData наполняет хранилище демонстрационными данными.
func (h *Handler) SeedData(w http.ResponseWriter, r *http.Request) {
	if err := h.store.GenerateTestData(); err != nil {
		h.internalError(w, "seed data error", err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
