package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
)

func (h *Handler) handleCustomerCreate(w http.ResponseWriter, r *http.Request) {
	var c domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		h.writeError(w, fmt.Errorf("%w: malformed request body", domain.ErrValidation))
		return
	}

	stored, err := h.customers.Register(r.Context(), c)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, stored)
}

func (h *Handler) handleCustomerList(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	h.writeJSON(w, http.StatusOK, customers)
}

func (h *Handler) handleCustomerGet(w http.ResponseWriter, r *http.Request) {
	c, err := h.customers.Get(r.Context(), r.PathValue("row"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleCustomerDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.customers.Delete(r.Context(), r.PathValue("row")); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusNoContent, nil)
}
