package catalogo

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/intelicom/api-crm/internal/validacion"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository(db)}
}

// Listar atiende GET /catalogos/{nombre}
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	nombre := mux.Vars(r)["nombre"]
	elementos, err := h.Repository.Listar(nombre)
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}
	validacion.ResponderJSON(w, http.StatusOK, elementos)
}

// ProvinciasPorDepartamento atiende GET /provincias/{departamentoID}
func (h *Handler) ProvinciasPorDepartamento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["departamentoID"])
	if err != nil {
		validacion.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "ID de departamento inválido."})
		return
	}
	provincias, err := h.Repository.ProvinciasPorDepartamento(uint(id))
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}
	validacion.ResponderJSON(w, http.StatusOK, provincias)
}

// DistritosPorProvincia atiende GET /distritos/{provinciaID}
func (h *Handler) DistritosPorProvincia(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["provinciaID"])
	if err != nil {
		validacion.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "ID de provincia inválido."})
		return
	}
	distritos, err := h.Repository.DistritosPorProvincia(uint(id))
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}
	validacion.ResponderJSON(w, http.StatusOK, distritos)
}

// SubtiposPorTipoContacto atiende GET /subtipos/{tipoContactoID}
func (h *Handler) SubtiposPorTipoContacto(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["tipoContactoID"])
	if err != nil {
		validacion.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "ID de tipo de contacto inválido."})
		return
	}
	subtipos, err := h.Repository.SubtiposPorTipoContacto(uint(id))
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}
	validacion.ResponderJSON(w, http.StatusOK, subtipos)
}

// metadataResponse agrupa todos los catálogos que el formulario de leads
// necesita en una sola respuesta.
type metadataResponse struct {
	Origenes         []Elemento        `json:"origenes"`
	TipoContactos    []Elemento        `json:"tipo_contactos"`
	SubtipoContactos []SubtipoContacto `json:"subtipo_contactos"`
	Transferencias   []Elemento        `json:"transferencias"`
	TipoViviendas    []Elemento        `json:"tipo_viviendas"`
	TipoBases        []Elemento        `json:"tipo_bases"`
	TipoPlanes       []Elemento        `json:"tipo_planes"`
	Sectores         []Elemento        `json:"sectores"`
	TipoDocumentos   []Elemento        `json:"tipo_documentos"`
	Departamentos    []Elemento        `json:"departamentos"`
	Provincias       []Provincia       `json:"provincias"`
	Distritos        []Distrito        `json:"distritos"`
}

// Metadata atiende GET /leads/metadata
func (h *Handler) Metadata(w http.ResponseWriter, r *http.Request) {
	var (
		resp metadataResponse
		err  error
	)

	carga := []struct {
		nombre  string
		destino *[]Elemento
	}{
		{"origen", &resp.Origenes},
		{"tipo-contacto", &resp.TipoContactos},
		{"transferencia", &resp.Transferencias},
		{"tipo-vivienda", &resp.TipoViviendas},
		{"tipo-base", &resp.TipoBases},
		{"tipo-plan-contrato", &resp.TipoPlanes},
		{"sector", &resp.Sectores},
		{"tipo-documento", &resp.TipoDocumentos},
		{"departamento", &resp.Departamentos},
	}
	for _, c := range carga {
		if *c.destino, err = h.Repository.Listar(c.nombre); err != nil {
			validacion.ResponderError(w, err)
			return
		}
	}

	if err = h.DB.Find(&resp.SubtipoContactos).Error; err != nil {
		validacion.ResponderError(w, err)
		return
	}
	if err = h.DB.Find(&resp.Provincias).Error; err != nil {
		validacion.ResponderError(w, err)
		return
	}
	if err = h.DB.Find(&resp.Distritos).Error; err != nil {
		validacion.ResponderError(w, err)
		return
	}

	validacion.ResponderJSON(w, http.StatusOK, resp)
}
