package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
)

func (h *Handler) handleOrderCreate(w http.ResponseWriter, r *http.Request) {
	var o domain.Order
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		h.writeError(w, fmt.Errorf("%w: malformed request body", domain.ErrValidation))
		return
	}

	stored, err := h.orders.Register(r.Context(), o)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, stored)
}

func (h *Handler) handleOrderEdit(w http.ResponseWriter, r *http.Request) {
	var o domain.Order
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		h.writeError(w, fmt.Errorf("%w: malformed request body", domain.ErrValidation))
		return
	}

	// Row key выводится из ID заказа; путь должен с ним совпадать.
	if row := r.PathValue("row"); row != fmt.Sprintf("%d", o.ID) {
		h.writeError(w, fmt.Errorf("%w: order id does not match path", domain.ErrValidation))
		return
	}

	stored, err := h.orders.Edit(r.Context(), o)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stored)
}

func (h *Handler) handleOrderList(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	h.writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) handleOrderGet(w http.ResponseWriter, r *http.Request) {
	o, err := h.orders.Get(r.Context(), r.PathValue("row"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, o)
}

func (h *Handler) handleOrderDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.orders.Delete(r.Context(), r.PathValue("row")); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusNoContent, nil)
}
