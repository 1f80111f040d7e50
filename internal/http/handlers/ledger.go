package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bennett-mcdowell/F25-Team03/internal/apperr"
	"github.com/bennett-mcdowell/F25-Team03/internal/domain"
	"github.com/bennett-mcdowell/F25-Team03/internal/logx"
)

// LedgerHandler handles HTTP requests for balances, purchases and orders.
type LedgerHandler struct {
	usecase ledgerUsecase
	logger  logx.Logger
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(logger logx.Logger, uc ledgerUsecase) *LedgerHandler {
	return &LedgerHandler{usecase: uc, logger: logger}
}

// Sponsors handles GET /driver/sponsors.
func (h *LedgerHandler) Sponsors(w http.ResponseWriter, r *http.Request) {
	driverID, err := driverFromHeader(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusUnauthorized, "missing driver id")
		return
	}

	balances, err := h.usecase.Sponsors(r.Context(), driverID)
	if err != nil {
		h.writeUsecaseError(w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, sponsorsToResponse(balances))
}

// Purchase handles POST /purchase.
func (h *LedgerHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	driverID, err := driverFromHeader(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusUnauthorized, "missing driver id")
		return
	}

	var req purchaseRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	res, err := h.usecase.Purchase(r.Context(), driverID, req.SponsorID, purchaseItemsToService(req.Items))
	if err != nil {
		h.writeUsecaseError(w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, purchaseResultToResponse(res))
}

// Cancel handles POST /orders/{id}/cancel.
func (h *LedgerHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	driverID, err := driverFromHeader(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusUnauthorized, "missing driver id")
		return
	}

	orderID, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	res, err := h.usecase.Cancel(r.Context(), driverID, orderID)
	if err != nil {
		h.writeUsecaseError(w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, cancelResultToResponse(res))
}

// UpdateStatus handles PUT /orders/{id}/status.
func (h *LedgerHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateStatusRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	o, err := h.usecase.UpdateStatus(r.Context(), orderID, domain.OrderStatus(req.Status))
	if err != nil {
		h.writeUsecaseError(w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, orderToDTO(o))
}

// GetOrder handles GET /orders/{id}.
func (h *LedgerHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	o, err := h.usecase.Order(r.Context(), orderID)
	if err != nil {
		h.writeUsecaseError(w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, orderToDTO(o))
}

// ListOrders handles GET /orders. The driver header scopes the list when
// present; sponsor_id and status narrow it further.
func (h *LedgerHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	var f domain.OrderFilter

	if driverID, err := driverFromHeader(r); err == nil {
		f.DriverID = &driverID
	} else if raw := r.URL.Query().Get("driver_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid driver_id")
			return
		}
		f.DriverID = &id
	}

	if raw := r.URL.Query().Get("sponsor_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid sponsor_id")
			return
		}
		f.SponsorID = &id
	}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.OrderStatus(raw)
		f.Status = &status
	}

	orders, err := h.usecase.Orders(r.Context(), f)
	if err != nil {
		h.writeUsecaseError(w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, ordersToResponse(orders))
}

// Alerts handles GET /driver/alerts.
func (h *LedgerHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	driverID, err := driverFromHeader(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusUnauthorized, "missing driver id")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	alerts, err := h.usecase.Alerts(r.Context(), driverID, limit)
	if err != nil {
		h.writeUsecaseError(w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, alertsToResponse(alerts))
}

func (h *LedgerHandler) writeUsecaseError(w http.ResponseWriter, r *http.Request, err error) {
	if ib, ok := apperr.AsInsufficientBalance(err); ok {
		writeJSON(h.logger, w, r, http.StatusConflict, insufficientToResponse(ib))
		return
	}
	switch {
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "order not found")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "status conflict")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
