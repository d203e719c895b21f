package contrato

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/intelicom/api-crm/internal/auth"
	"github.com/intelicom/api-crm/internal/usuario"
	"github.com/intelicom/api-crm/internal/validacion"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Converter  *Converter
	Usuarios   usuario.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Converter:  NewConverter(),
		Usuarios:   usuario.NewRepository(),
	}
}

type convertirRequest struct {
	Observaciones string `json:"observaciones"`
}

// ConvertirLead atiende POST /leads/{id}/convertir
func (h *Handler) ConvertirLead(w http.ResponseWriter, r *http.Request) {
	leadID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		validacion.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "ID de lead inválido."})
		return
	}

	var req convertirRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	actorID, ok := auth.UsuarioDelContexto(r.Context())
	if !ok {
		validacion.ResponderJSON(w, http.StatusUnauthorized, map[string]string{"error": "No autenticado."})
		return
	}
	actor, err := h.Usuarios.BuscarPorID(h.DB, actorID)
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}

	c, l, err := h.Converter.Convertir(h.DB, uint(leadID), actor, req.Observaciones)
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}

	creado, err := h.Repository.BuscarPorID(h.DB, c.ID)
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}

	validacion.ResponderJSON(w, http.StatusCreated, map[string]any{
		"message":  "Lead convertido a contrato con éxito.",
		"contrato": NuevoContratoDTO(creado),
		"lead": map[string]any{
			"id":         l.ID,
			"nombre":     l.Nombre,
			"apellido":   l.Apellido,
			"convertido": l.Convertido,
		},
	})
}

// Listar atiende GET /contratos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	contratos, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}
	validacion.ResponderJSON(w, http.StatusOK, NuevosContratoDTOs(contratos))
}

// BuscarPorID atiende GET /contratos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		validacion.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "ID de contrato inválido."})
		return
	}
	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}
	validacion.ResponderJSON(w, http.StatusOK, NuevoContratoDTO(c))
}

// contratoRequest es el cuerpo de actualización. El número móvil y el lead
// no aparecen: quedan inmutables tras la conversión.
type contratoRequest struct {
	NombreContrato  *string    `json:"nombre_contrato"`
	Nombre          *string    `json:"nombre"`
	Apellido        *string    `json:"apellido"`
	PlanContratoID  *uint      `json:"plan_contrato_id"`
	TipoDocumentoID *uint      `json:"tipo_documento_id"`
	NumeroDocumento *string    `json:"numero_documento"`
	OrigenID        *uint      `json:"origen_id"`
	Coordenadas     *string    `json:"coordenadas"`
	FechaInicio     *time.Time `json:"fecha_inicio"`
	FechaFin        *time.Time `json:"fecha_fin"`
	Observaciones   *string    `json:"observaciones"`
}

func aplicar(c *Contrato, req *contratoRequest, parcial bool) {
	asignarTexto := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		} else if !parcial {
			*dst = ""
		}
	}
	asignarRef := func(dst **uint, v *uint) {
		if v != nil {
			if *v == 0 {
				*dst = nil
			} else {
				*dst = v
			}
		} else if !parcial {
			*dst = nil
		}
	}

	if req.NombreContrato != nil {
		c.NombreContrato = *req.NombreContrato
	}
	asignarTexto(&c.Nombre, req.Nombre)
	asignarTexto(&c.Apellido, req.Apellido)
	asignarTexto(&c.NumeroDocumento, req.NumeroDocumento)
	asignarTexto(&c.Coordenadas, req.Coordenadas)
	asignarTexto(&c.Observaciones, req.Observaciones)
	asignarRef(&c.PlanContratoID, req.PlanContratoID)
	asignarRef(&c.TipoDocumentoID, req.TipoDocumentoID)
	asignarRef(&c.OrigenID, req.OrigenID)
	if req.FechaInicio != nil {
		c.FechaInicio = *req.FechaInicio
	}
	if req.FechaFin != nil {
		c.FechaFin = req.FechaFin
	} else if !parcial {
		c.FechaFin = nil
	}
}

// Actualizar atiende PUT /contratos/{id}
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	h.actualizar(w, r, false)
}

// ActualizarParcial atiende PATCH /contratos/{id}
func (h *Handler) ActualizarParcial(w http.ResponseWriter, r *http.Request) {
	h.actualizar(w, r, true)
}

func (h *Handler) actualizar(w http.ResponseWriter, r *http.Request, parcial bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		validacion.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "ID de contrato inválido."})
		return
	}

	var req contratoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		validacion.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido."})
		return
	}

	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}

	aplicar(c, &req, parcial)
	if err := h.Repository.Salvar(h.DB, c); err != nil {
		validacion.ResponderError(w, err)
		return
	}

	actualizado, err := h.Repository.BuscarPorID(h.DB, c.ID)
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}
	validacion.ResponderJSON(w, http.StatusOK, NuevoContratoDTO(actualizado))
}

// Eliminar atiende DELETE /contratos/{id}
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		validacion.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "ID de contrato inválido."})
		return
	}
	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		validacion.ResponderError(w, err)
		return
	}
	if err := h.Repository.Eliminar(h.DB, uint(id)); err != nil {
		validacion.ResponderError(w, err)
		return
	}
	validacion.ResponderMensaje(w, http.StatusOK, "Contrato eliminado correctamente.")
}
