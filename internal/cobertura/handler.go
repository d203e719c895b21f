package cobertura

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/intelicom/api-crm/internal/validacion"
)

type Handler struct {
	Cliente *Cliente
}

func NewHandler() *Handler {
	return &Handler{Cliente: NewCliente()}
}

type consultaRequest struct {
	Coordenadas string `json:"coordenadas"`
}

// Consultar atiende POST /cobertura. Recibe coordenadas "lat, lon" y
// reenvía la consulta al proveedor.
func (h *Handler) Consultar(w http.ResponseWriter, r *http.Request) {
	var req consultaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Coordenadas == "" {
		validacion.ResponderJSON(w, http.StatusBadRequest,
			map[string]string{"error": "El campo 'coordenadas' es obligatorio."})
		return
	}

	partes := strings.Split(req.Coordenadas, ",")
	if len(partes) != 2 {
		validacion.ResponderJSON(w, http.StatusBadRequest,
			map[string]string{"error": "Formato incorrecto. Debe ser 'latitud, longitud'."})
		return
	}
	latitud := strings.TrimSpace(partes[0])
	longitud := strings.TrimSpace(partes[1])

	resultado, err := h.Cliente.Consultar(latitud, longitud)
	if err != nil {
		validacion.ResponderJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}

	validacion.ResponderJSON(w, http.StatusOK, map[string]string{"resultado_cobertura": resultado})
}
