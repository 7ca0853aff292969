package rest

import (
	"fmt"
	"net/http"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
)

// headerFileName — заголовок с именем файла для file relay.
const headerFileName = "file-name"

// handleFileUpload принимает файл как сырое тело запроса;
// имя передаётся в заголовке file-name.
func (h *Handler) handleFileUpload(w http.ResponseWriter, r *http.Request) {
	name := r.Header.Get(headerFileName)
	if name == "" {
		h.writeError(w, fmt.Errorf("%w: file name is required", domain.ErrValidation))
		return
	}
	if r.Body == nil || r.ContentLength == 0 {
		h.writeError(w, fmt.Errorf("%w: file body is required", domain.ErrValidation))
		return
	}

	if err := h.files.Save(r.Context(), name, r.Body, r.ContentLength); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]string{"name": name})
}

func (h *Handler) handleFileList(w http.ResponseWriter, r *http.Request) {
	files, err := h.files.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if files == nil {
		files = []domain.FileInfo{}
	}
	h.writeJSON(w, http.StatusOK, files)
}

func (h *Handler) handleFileDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.files.Delete(r.Context(), r.PathValue("name")); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusNoContent, nil)
}
