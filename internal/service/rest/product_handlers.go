package rest

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
)

// maxProductForm ограничивает размер multipart-формы товара в памяти.
const maxProductForm = 32 << 20 // 32 MiB

// handleProductCreate принимает multipart-форму: текстовые поля
// карточки и опциональный файл "image".
func (h *Handler) handleProductCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxProductForm); err != nil {
		h.writeError(w, fmt.Errorf("%w: malformed multipart form", domain.ErrValidation))
		return
	}

	id, err := strconv.Atoi(r.FormValue("id"))
	if err != nil {
		h.writeError(w, fmt.Errorf("%w: product id must be a number", domain.ErrValidation))
		return
	}

	p := domain.Product{
		ID:          id,
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Price:       r.FormValue("price"),
		Category:    r.FormValue("category"),
	}

	var image io.Reader
	var imageName string
	switch file, header, err := r.FormFile("image"); {
	case err == nil:
		defer file.Close()
		image = file
		imageName = header.Filename
	case errors.Is(err, http.ErrMissingFile):
		// Изображение опционально: товар без картинки — нормальный случай.
	default:
		h.writeError(w, fmt.Errorf("%w: malformed image part", domain.ErrValidation))
		return
	}

	stored, err := h.products.Add(r.Context(), p, image, imageName)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, stored)
}

func (h *Handler) handleProductList(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	h.writeJSON(w, http.StatusOK, products)
}

func (h *Handler) handleProductGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.products.Get(r.Context(), r.PathValue("row"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleProductDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.products.Delete(r.Context(), r.PathValue("row")); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusNoContent, nil)
}
