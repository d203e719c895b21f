package usuario

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/intelicom/api-crm/internal/auth"
	"github.com/intelicom/api-crm/internal/documento"
	"github.com/intelicom/api-crm/internal/validacion"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Documentos documento.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Documentos: documento.NewRepository(),
	}
}

type crearUsuarioRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	Correo          string `json:"correo"`
	Nombres         string `json:"nombres"`
	Apellidos       string `json:"apellidos"`
	Telefono        string `json:"telefono"`
	Direccion       string `json:"direccion"`
	TipoDocumentoID uint   `json:"tipo_documento_id"`
	NumeroDocumento string `json:"numero_documento"`
}

// Crear atiende POST /usuarios: crea el usuario con su perfil y, si viene
// en el cuerpo, registra su documento de identidad.
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var req crearUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		validacion.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido."})
		return
	}

	campos := map[string]string{}
	if req.Username == "" {
		campos["username"] = "Este campo es obligatorio."
	}
	if req.Password == "" {
		campos["password"] = "Este campo es obligatorio."
	}
	if req.Correo == "" {
		campos["correo"] = "Este campo es obligatorio."
	}
	if len(campos) > 0 {
		validacion.ResponderError(w, &validacion.ErrorValidacion{Campos: campos})
		return
	}

	existe, err := h.Repository.ExisteUsername(h.DB, req.Username)
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}
	if existe {
		validacion.ResponderError(w, &validacion.ErrorConflicto{
			Campo:   "username",
			Mensaje: "El nombre de usuario ya está registrado.",
		})
		return
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}

	u := Usuario{
		Username:  req.Username,
		Correo:    req.Correo,
		Nombres:   req.Nombres,
		Apellidos: req.Apellidos,
		Telefono:  req.Telefono,
		Direccion: req.Direccion,
		Password:  hash,
		Activo:    true,
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := h.Repository.Salvar(tx, &u); err != nil {
			return err
		}
		if req.TipoDocumentoID != 0 && req.NumeroDocumento != "" {
			return h.Documentos.Registrar(tx, &documento.Documento{
				TipoDocumentoID: req.TipoDocumentoID,
				NumeroDocumento: req.NumeroDocumento,
				UsuarioID:       u.ID,
			})
		}
		return nil
	})
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}

	validacion.ResponderMensaje(w, http.StatusCreated,
		fmt.Sprintf("Usuario '%s' creado con éxito.", u.Username))
}

// Detalle atiende GET /usuarios/{id}
func (h *Handler) Detalle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		validacion.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "ID de usuario inválido."})
		return
	}

	u, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}

	doc, err := h.Documentos.BuscarPorUsuario(h.DB, u.ID)
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}

	validacion.ResponderJSON(w, http.StatusOK, map[string]any{
		"usuario":   u,
		"documento": doc,
	})
}

type cambiarPasswordRequest struct {
	PasswordActual string `json:"password_actual"`
	PasswordNueva  string `json:"password_nueva"`
}

// CambiarPassword atiende POST /usuarios/cambiar-password para el usuario
// autenticado.
func (h *Handler) CambiarPassword(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.UsuarioDelContexto(r.Context())
	if !ok {
		validacion.ResponderJSON(w, http.StatusUnauthorized, map[string]string{"error": "No autenticado."})
		return
	}

	var req cambiarPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		validacion.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido."})
		return
	}
	if req.PasswordNueva == "" {
		validacion.ResponderError(w, validacion.NuevoErrorValidacion("password_nueva", "Este campo es obligatorio."))
		return
	}

	u, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}
	if !verificarPassword(u.Password, req.PasswordActual) {
		validacion.ResponderError(w, validacion.NuevoErrorValidacion("password_actual", "La contraseña actual no es correcta."))
		return
	}

	hash, err := hashPassword(req.PasswordNueva)
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}
	if err := h.Repository.CambiarPassword(h.DB, id, hash); err != nil {
		validacion.ResponderError(w, err)
		return
	}

	validacion.ResponderMensaje(w, http.StatusOK, "Contraseña actualizada correctamente.")
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login atiende POST /token: valida credenciales y emite el token de acceso.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		validacion.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido."})
		return
	}
	if req.Username == "" || req.Password == "" {
		validacion.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "Se requieren username y password."})
		return
	}

	u, err := h.Repository.BuscarPorUsername(h.DB, req.Username)
	if err != nil || !verificarPassword(u.Password, req.Password) {
		validacion.ResponderJSON(w, http.StatusUnauthorized, map[string]string{"error": "Credenciales inválidas."})
		return
	}
	if !u.Activo {
		validacion.ResponderJSON(w, http.StatusUnauthorized, map[string]string{"error": "Cuenta inactiva."})
		return
	}

	token, err := auth.GenerateAccessToken(u.ID, u.EsAdmin)
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}

	validacion.ResponderJSON(w, http.StatusOK, map[string]any{
		"access": token,
		"user": map[string]any{
			"id":        u.ID,
			"username":  u.Username,
			"correo":    u.Correo,
			"nombres":   u.Nombres,
			"apellidos": u.Apellidos,
			"telefono":  u.Telefono,
		},
	})
}
