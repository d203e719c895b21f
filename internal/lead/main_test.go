package lead_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/intelicom/api-crm/internal/auth"
	"github.com/intelicom/api-crm/internal/catalogo"
	"github.com/intelicom/api-crm/internal/contrato"
	"github.com/intelicom/api-crm/internal/documento"
	"github.com/intelicom/api-crm/internal/historial"
	"github.com/intelicom/api-crm/internal/lead"
	"github.com/intelicom/api-crm/internal/usuario"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// datosBase agrupa las filas de catálogo y el usuario que los tests reutilizan.
type datosBase struct {
	Agente         usuario.Usuario
	Contacto       catalogo.TipoContacto
	NoContacto     catalogo.TipoContacto
	Interesado     catalogo.SubtipoContacto
	Transferencia  catalogo.SubtipoContacto
	MotivoFibra    catalogo.Transferencia
	OrigenFacebook catalogo.Origen
	TipoDNI        catalogo.TipoDocumento
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, catalogo.Migrate(db))
	assert.NoError(t, db.AutoMigrate(
		&usuario.Usuario{},
		&documento.Documento{},
		&lead.Lead{},
		&historial.HistorialLead{},
		&contrato.Contrato{},
	))
	return db
}

func seedBase(t *testing.T, db *gorm.DB) datosBase {
	d := datosBase{
		Agente:         usuario.Usuario{Username: "ana", Correo: "ana@intelicom.pe", Nombres: "Ana", Apellidos: "Torres", Password: "x"},
		Contacto:       catalogo.TipoContacto{NombreTipo: "Contacto"},
		NoContacto:     catalogo.TipoContacto{NombreTipo: "No Contacto"},
		MotivoFibra:    catalogo.Transferencia{Descripcion: "Sin cobertura de fibra"},
		OrigenFacebook: catalogo.Origen{NombreOrigen: "Facebook"},
		TipoDNI:        catalogo.TipoDocumento{NombreTipo: "DNI"},
	}
	assert.NoError(t, db.Create(&d.Agente).Error)
	assert.NoError(t, db.Create(&d.Contacto).Error)
	assert.NoError(t, db.Create(&d.NoContacto).Error)
	assert.NoError(t, db.Create(&d.MotivoFibra).Error)
	assert.NoError(t, db.Create(&d.OrigenFacebook).Error)
	assert.NoError(t, db.Create(&d.TipoDNI).Error)

	d.Interesado = catalogo.SubtipoContacto{Descripcion: "Interesado", TipoContactoID: d.Contacto.ID}
	d.Transferencia = catalogo.SubtipoContacto{Descripcion: "Transferencia", TipoContactoID: d.NoContacto.ID}
	assert.NoError(t, db.Create(&d.Interesado).Error)
	assert.NoError(t, db.Create(&d.Transferencia).Error)
	return d
}

func nuevoLead(d datosBase, movil string) *lead.Lead {
	return &lead.Lead{
		Nombre:            "Carlos",
		Apellido:          "Quispe",
		NumeroMovil:       movil,
		SubtipoContactoID: d.Interesado.ID,
		DuenoID:           d.Agente.ID,
	}
}

// conUsuario inyecta el id del usuario autenticado en el contexto, igual que
// lo haría el middleware de autenticación tras validar el token.
func conUsuario(id uint, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), auth.CtxUsuarioID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func nuevoRouter(db *gorm.DB, usuarioID uint) http.Handler {
	leadHandler := lead.NewHandler(db)
	historialHandler := historial.NewHandler(db)
	contratoHandler := contrato.NewHandler(db)

	r := mux.NewRouter()
	r.HandleFunc("/leads", leadHandler.Crear).Methods("POST")
	r.HandleFunc("/leads", leadHandler.Listar).Methods("GET")
	r.HandleFunc("/leads/buscar/{movil}", leadHandler.Buscar).Methods("GET")
	r.HandleFunc("/leads/{id}", leadHandler.Detalle).Methods("GET")
	r.HandleFunc("/leads/{id}", leadHandler.Actualizar).Methods("PUT")
	r.HandleFunc("/leads/{id}", leadHandler.ActualizarParcial).Methods("PATCH")
	r.HandleFunc("/leads/{id}", leadHandler.Eliminar).Methods("DELETE")
	r.HandleFunc("/leads/{id}/convertir", contratoHandler.ConvertirLead).Methods("POST")
	r.HandleFunc("/leads/{id}/historial", historialHandler.ListarPorLead).Methods("GET")
	return conUsuario(usuarioID, r)
}
