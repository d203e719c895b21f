package lead

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/intelicom/api-crm/internal/auth"
	"github.com/intelicom/api-crm/internal/catalogo"
	"github.com/intelicom/api-crm/internal/documento"
	"github.com/intelicom/api-crm/internal/historial"
	"github.com/intelicom/api-crm/internal/usuario"
	"github.com/intelicom/api-crm/internal/validacion"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Historial  historial.Repository
	Documentos documento.Repository
	Usuarios   usuario.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Historial:  historial.NewRepository(),
		Documentos: documento.NewRepository(),
		Usuarios:   usuario.NewRepository(),
	}
}

// LeadRequest es el cuerpo de creación y actualización. Todos los campos son
// punteros para poder distinguir "no enviado" en el modo parcial. El flag
// convertido no aparece aquí a propósito: solo la conversión lo cambia.
type LeadRequest struct {
	NombreLead     *string `json:"nombre_lead"`
	Nombre         *string `json:"nombre"`
	Apellido       *string `json:"apellido"`
	NumeroMovil    *string `json:"numero_movil"`
	NumeroTrabajo  *string `json:"numero_trabajo"`
	NumeroFax      *string `json:"numero_fax"`
	NombreCompania *string `json:"nombre_compania"`
	Correo         *string `json:"correo"`
	Cargo          *string `json:"cargo"`
	Direccion      *string `json:"direccion"`
	Etiquetas      *string `json:"etiquetas"`
	SitioWeb       *string `json:"sitio_web"`
	Skype          *string `json:"skype"`
	Facebook       *string `json:"facebook"`
	Twitter        *string `json:"twitter"`
	Linkedin       *string `json:"linkedin"`
	Descripcion    *string `json:"descripcion"`
	Coordenadas    *string `json:"coordenadas"`

	OrigenID             *uint `json:"origen_id"`
	SubtipoContactoID    *uint `json:"subtipo_contacto_id"`
	ResultadoCoberturaID *uint `json:"resultado_cobertura_id"`
	TransferenciaID      *uint `json:"transferencia_id"`
	TipoViviendaID       *uint `json:"tipo_vivienda_id"`
	TipoBaseID           *uint `json:"tipo_base_id"`
	PlanContratoID       *uint `json:"plan_contrato_id"`
	DistritoID           *uint `json:"distrito_id"`
	SectorID             *uint `json:"sector_id"`
	DuenoID              *uint `json:"dueno_id"`

	// Documento opcional registrado junto con el lead
	TipoDocumentoID *uint   `json:"tipo_documento"`
	NroDocumento    *string `json:"nro_documento"`
}

func texto(dst *string, v *string, parcial bool) {
	if v != nil {
		*dst = *v
	} else if !parcial {
		*dst = ""
	}
}

func referencia(dst **uint, v *uint, parcial bool) {
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

// aplicar vuelca el request sobre el lead. En modo completo (PUT) los campos
// ausentes se limpian; en modo parcial (PATCH) se conservan.
func aplicar(l *Lead, req *LeadRequest, parcial bool) error {
	texto(&l.NombreLead, req.NombreLead, parcial)
	texto(&l.Nombre, req.Nombre, parcial)
	texto(&l.Apellido, req.Apellido, parcial)
	texto(&l.NumeroMovil, req.NumeroMovil, parcial)
	texto(&l.NumeroTrabajo, req.NumeroTrabajo, parcial)
	texto(&l.NumeroFax, req.NumeroFax, parcial)
	texto(&l.NombreCompania, req.NombreCompania, parcial)
	texto(&l.Correo, req.Correo, parcial)
	texto(&l.Cargo, req.Cargo, parcial)
	texto(&l.Direccion, req.Direccion, parcial)
	texto(&l.Etiquetas, req.Etiquetas, parcial)
	texto(&l.SitioWeb, req.SitioWeb, parcial)
	texto(&l.Skype, req.Skype, parcial)
	texto(&l.Facebook, req.Facebook, parcial)
	texto(&l.Twitter, req.Twitter, parcial)
	texto(&l.Linkedin, req.Linkedin, parcial)
	texto(&l.Descripcion, req.Descripcion, parcial)

	if req.Coordenadas != nil {
		normalizadas, err := NormalizarCoordenadas(*req.Coordenadas)
		if err != nil {
			return validacion.NuevoErrorValidacion("coordenadas",
				"Formato incorrecto. Debe ser 'latitud, longitud'.")
		}
		l.Coordenadas = normalizadas
	} else if !parcial {
		l.Coordenadas = ""
	}

	referencia(&l.OrigenID, req.OrigenID, parcial)
	referencia(&l.ResultadoCoberturaID, req.ResultadoCoberturaID, parcial)
	referencia(&l.TransferenciaID, req.TransferenciaID, parcial)
	referencia(&l.TipoViviendaID, req.TipoViviendaID, parcial)
	referencia(&l.TipoBaseID, req.TipoBaseID, parcial)
	referencia(&l.PlanContratoID, req.PlanContratoID, parcial)
	referencia(&l.DistritoID, req.DistritoID, parcial)
	referencia(&l.SectorID, req.SectorID, parcial)

	if req.SubtipoContactoID != nil {
		l.SubtipoContactoID = *req.SubtipoContactoID
	} else if !parcial {
		l.SubtipoContactoID = 0
	}

	if req.DuenoID != nil && *req.DuenoID != 0 {
		l.DuenoID = *req.DuenoID
	}

	return nil
}

func (h *Handler) usuarioActual(r *http.Request) (*usuario.Usuario, error) {
	id, ok := auth.UsuarioDelContexto(r.Context())
	if !ok {
		return nil, validacion.ErrNoEncontrado
	}
	return h.Usuarios.BuscarPorID(h.DB, id)
}

// Listar atiende GET /leads
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}
	validacion.ResponderJSON(w, http.StatusOK, NuevosLeadDTOs(leads))
}

// Crear atiende POST /leads. El usuario autenticado pasa a ser el dueño del
// lead salvo que el cuerpo traiga un dueno_id explícito. Toda la creación
// (lead, entradas de historial y documento opcional) corre en una única
// transacción.
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var req LeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		validacion.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido."})
		return
	}

	actor, err := h.usuarioActual(r)
	if err != nil {
		validacion.ResponderJSON(w, http.StatusUnauthorized, map[string]string{"error": "No autenticado."})
		return
	}

	var l Lead
	if err := aplicar(&l, &req, false); err != nil {
		validacion.ResponderError(w, err)
		return
	}
	if l.DuenoID == 0 {
		l.DuenoID = actor.ID
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := Validar(tx, &l, 0); err != nil {
			return err
		}
		if err := tx.Create(&l).Error; err != nil {
			return err
		}

		if err := h.Historial.Registrar(tx, &historial.HistorialLead{
			LeadID:      l.ID,
			UsuarioID:   &actor.ID,
			Descripcion: fmt.Sprintf("Lead creado por %s.", actor.NombreCompleto()),
		}); err != nil {
			return err
		}

		var subtipo catalogo.SubtipoContacto
		if err := tx.Preload("TipoContacto").First(&subtipo, l.SubtipoContactoID).Error; err != nil {
			return err
		}
		if err := h.Historial.Registrar(tx, &historial.HistorialLead{
			LeadID:    l.ID,
			UsuarioID: &actor.ID,
			Descripcion: fmt.Sprintf("Tipo de contacto: %s y Subtipo de contacto: %s.",
				subtipo.TipoContacto.NombreTipo, subtipo.Descripcion),
			TipoContactoID:    &subtipo.TipoContactoID,
			SubtipoContactoID: &subtipo.ID,
		}); err != nil {
			return err
		}

		if req.TipoDocumentoID != nil && req.NroDocumento != nil && *req.NroDocumento != "" {
			return h.Documentos.Registrar(tx, &documento.Documento{
				TipoDocumentoID: *req.TipoDocumentoID,
				NumeroDocumento: *req.NroDocumento,
				LeadID:          &l.ID,
				UsuarioID:       actor.ID,
			})
		}
		return nil
	})
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}

	creado, err := h.Repository.BuscarPorID(h.DB, l.ID)
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}
	validacion.ResponderJSON(w, http.StatusCreated, NuevoLeadDTO(creado))
}

// Detalle atiende GET /leads/{id}
func (h *Handler) Detalle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		validacion.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "ID de lead inválido."})
		return
	}
	l, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}
	validacion.ResponderJSON(w, http.StatusOK, NuevoLeadDTO(l))
}

// Actualizar atiende PUT /leads/{id} (reemplazo completo).
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	h.actualizar(w, r, false)
}

// ActualizarParcial atiende PATCH /leads/{id} (solo los campos enviados).
func (h *Handler) ActualizarParcial(w http.ResponseWriter, r *http.Request) {
	h.actualizar(w, r, true)
}

func (h *Handler) actualizar(w http.ResponseWriter, r *http.Request, parcial bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		validacion.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "ID de lead inválido."})
		return
	}

	var req LeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		validacion.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido."})
		return
	}

	actor, err := h.usuarioActual(r)
	if err != nil {
		validacion.ResponderJSON(w, http.StatusUnauthorized, map[string]string{"error": "No autenticado."})
		return
	}

	l, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}

	subtipoAnterior := l.SubtipoContacto // copia, con tipo precargado

	if err := aplicar(l, &req, parcial); err != nil {
		validacion.ResponderError(w, err)
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := Validar(tx, l, l.ID); err != nil {
			return err
		}
		if err := h.Repository.Salvar(tx, l); err != nil {
			return err
		}
		if l.SubtipoContactoID == subtipoAnterior.ID {
			return nil
		}

		var subtipoActual catalogo.SubtipoContacto
		if err := tx.Preload("TipoContacto").First(&subtipoActual, l.SubtipoContactoID).Error; err != nil {
			return err
		}

		cambios := fmt.Sprintf("Subtipo de contacto cambiado de %s a %s",
			subtipoAnterior.Descripcion, subtipoActual.Descripcion)
		if subtipoActual.TipoContactoID != subtipoAnterior.TipoContactoID {
			cambios += fmt.Sprintf(" y Tipo de contacto cambiado de %s a %s.",
				subtipoAnterior.TipoContacto.NombreTipo, subtipoActual.TipoContacto.NombreTipo)
		}

		return h.Historial.Registrar(tx, &historial.HistorialLead{
			LeadID:            l.ID,
			UsuarioID:         &actor.ID,
			Descripcion:       cambios,
			TipoContactoID:    &subtipoActual.TipoContactoID,
			SubtipoContactoID: &subtipoActual.ID,
		})
	})
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}

	actualizado, err := h.Repository.BuscarPorID(h.DB, l.ID)
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}
	validacion.ResponderJSON(w, http.StatusOK, NuevoLeadDTO(actualizado))
}

// Eliminar atiende DELETE /leads/{id}
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		validacion.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "ID de lead inválido."})
		return
	}
	if err := h.Repository.Eliminar(h.DB, uint(id)); err != nil {
		validacion.ResponderError(w, err)
		return
	}
	validacion.ResponderMensaje(w, http.StatusOK, "Lead eliminado correctamente.")
}

// Buscar atiende GET /leads/buscar/{movil}
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	fragmento := mux.Vars(r)["movil"]
	if len(fragmento) < 5 {
		validacion.ResponderJSON(w, http.StatusBadRequest,
			map[string]string{"error": "Ingrese al menos 5 dígitos para la búsqueda."})
		return
	}

	leads, err := h.Repository.BuscarPorMovil(h.DB, fragmento)
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}
	if len(leads) == 0 {
		validacion.ResponderJSON(w, http.StatusNotFound,
			map[string]string{"message": "No se encontraron leads con ese número de móvil."})
		return
	}
	validacion.ResponderJSON(w, http.StatusOK, NuevosLeadDTOs(leads))
}
