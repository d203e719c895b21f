package abonado

import (
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/intelicom/api-crm/internal/validacion"
)

// Abonado es la ficha del suscriptor tal como la devuelve el proveedor,
// sin el detalle de tickets.
type Abonado struct {
	IDServicio         string  `json:"idServicio"`
	Filial             string  `json:"filial"`
	CodigoAbonado      string  `json:"codigoAbonado"`
	Telefono           string  `json:"telefono,omitempty"`
	Celular            string  `json:"celular,omitempty"`
	DocumentoIdentidad string  `json:"documentoIdentidad"`
	Nombres            string  `json:"nombres"`
	Apellidos          string  `json:"apellidos"`
	Provincia          string  `json:"provincia,omitempty"`
	Distrito           string  `json:"distrito,omitempty"`
	Direccion          string  `json:"direccion,omitempty"`
	Deuda              float64 `json:"deuda"`
	PlanContratado     string  `json:"planContratado,omitempty"`
	EstadoServicio     string  `json:"estadoServicio"`
	FechaInstalacion   string  `json:"fechaInstalacion"`
	ClaseServicio      string  `json:"claseServicio"`
	Correo             string  `json:"correo,omitempty"`
	Latitud            string  `json:"latitud,omitempty"`
	Longitud           string  `json:"longitud,omitempty"`
}

type Handler struct {
	http *http.Client
	url  string
}

func NewHandler() *Handler {
	apiURL := os.Getenv("ABONADO_API_URL")
	if apiURL == "" {
		apiURL = "https://api.nubyx.pe/five9/consulta"
	}
	return &Handler{
		http: &http.Client{Timeout: 15 * time.Second},
		url:  apiURL,
	}
}

type consultaRequest struct {
	CodigoAbonado string `json:"codigoAbonado"`
}

// Consultar atiende POST /consulta-abonado: reenvía el código al proveedor
// y devuelve el primer abonado encontrado, filtrando los tickets.
func (h *Handler) Consultar(w http.ResponseWriter, r *http.Request) {
	var req consultaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CodigoAbonado == "" {
		validacion.ResponderJSON(w, http.StatusBadRequest,
			map[string]string{"error": "El campo 'codigoAbonado' es obligatorio."})
		return
	}

	form := url.Values{"codigoAbonado": {req.CodigoAbonado}}
	resp, err := h.http.Post(h.url, "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()))
	if err != nil {
		validacion.ResponderJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		validacion.ResponderJSON(w, resp.StatusCode,
			map[string]string{"error": "Error en la API externa."})
		return
	}

	var abonados []Abonado
	if err := json.NewDecoder(resp.Body).Decode(&abonados); err != nil {
		validacion.ResponderJSON(w, http.StatusBadGateway,
			map[string]string{"error": "Respuesta del proveedor inválida."})
		return
	}
	if len(abonados) == 0 {
		validacion.ResponderJSON(w, http.StatusNotFound,
			map[string]string{"error": "No se encontraron datos para el código ingresado."})
		return
	}

	validacion.ResponderJSON(w, http.StatusOK, abonados[0])
}
