package historial

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/intelicom/api-crm/internal/validacion"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// ListarPorLead atiende GET /leads/{id}/historial. Sin parámetros devuelve
// el historial completo; con ?page=N devuelve la página N de tamaño fijo.
func (h *Handler) ListarPorLead(w http.ResponseWriter, r *http.Request) {
	leadID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		validacion.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "ID de lead inválido."})
		return
	}

	if p := r.URL.Query().Get("page"); p != "" {
		pagina, err := strconv.Atoi(p)
		if err != nil || pagina < 1 {
			validacion.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "Número de página inválido."})
			return
		}
		entradas, total, err := h.Repository.ListarPagina(h.DB, uint(leadID), pagina)
		if err != nil {
			validacion.ResponderError(w, err)
			return
		}
		validacion.ResponderJSON(w, http.StatusOK, PaginaDTO{
			Count:    total,
			Page:     pagina,
			PageSize: TamanoPagina,
			Results:  NuevasEntradaDTOs(entradas),
		})
		return
	}

	entradas, err := h.Repository.ListarPorLead(h.DB, uint(leadID))
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}
	validacion.ResponderJSON(w, http.StatusOK, NuevasEntradaDTOs(entradas))
}
