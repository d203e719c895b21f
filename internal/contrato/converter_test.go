package contrato_test

import (
	"testing"

	"github.com/intelicom/api-crm/internal/catalogo"
	"github.com/intelicom/api-crm/internal/contrato"
	"github.com/intelicom/api-crm/internal/documento"
	"github.com/intelicom/api-crm/internal/historial"
	"github.com/intelicom/api-crm/internal/lead"
	"github.com/intelicom/api-crm/internal/usuario"
	"github.com/intelicom/api-crm/internal/validacion"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type escenario struct {
	db     *gorm.DB
	agente usuario.Usuario
	lead   lead.Lead
}

func prepararEscenario(t *testing.T) *escenario {
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

	e := &escenario{db: db}
	e.agente = usuario.Usuario{Username: "ana", Correo: "ana@intelicom.pe", Nombres: "Ana", Apellidos: "Torres", Password: "x"}
	assert.NoError(t, db.Create(&e.agente).Error)

	tipo := catalogo.TipoContacto{NombreTipo: "Contacto"}
	assert.NoError(t, db.Create(&tipo).Error)
	subtipo := catalogo.SubtipoContacto{Descripcion: "Interesado", TipoContactoID: tipo.ID}
	assert.NoError(t, db.Create(&subtipo).Error)
	plan := catalogo.TipoPlanContrato{Descripcion: "Fibra 200"}
	assert.NoError(t, db.Create(&plan).Error)
	origen := catalogo.Origen{NombreOrigen: "Facebook"}
	assert.NoError(t, db.Create(&origen).Error)
	dni := catalogo.TipoDocumento{NombreTipo: "DNI"}
	assert.NoError(t, db.Create(&dni).Error)

	e.lead = lead.Lead{
		Nombre:            "Carlos",
		Apellido:          "Quispe",
		NumeroMovil:       "987654321",
		SubtipoContactoID: subtipo.ID,
		PlanContratoID:    &plan.ID,
		OrigenID:          &origen.ID,
		Coordenadas:       "-12.04641, -77.04277",
		DuenoID:           e.agente.ID,
	}
	assert.NoError(t, db.Create(&e.lead).Error)
	assert.NoError(t, db.Create(&documento.Documento{
		TipoDocumentoID: dni.ID,
		NumeroDocumento: "45678912",
		LeadID:          &e.lead.ID,
		UsuarioID:       e.agente.ID,
	}).Error)
	return e
}

func TestConvertirLead(t *testing.T) {
	e := prepararEscenario(t)
	cv := contrato.NewConverter()

	c, l, err := cv.Convertir(e.db, e.lead.ID, &e.agente, "")
	assert.NoError(t, err)
	assert.True(t, l.Convertido)

	assert.Equal(t, "Carlos Quispe", c.NombreContrato)
	assert.Equal(t, "987654321", c.NumeroMovil)
	assert.Equal(t, e.lead.ID, c.LeadID)
	assert.Equal(t, "45678912", c.NumeroDocumento)
	assert.Equal(t, "-12.04641, -77.04277", c.Coordenadas)
	assert.Equal(t, contrato.ObservacionesPorDefecto, c.Observaciones)
	assert.False(t, c.FechaInicio.IsZero())

	// el flag quedó persistido
	var recargado lead.Lead
	assert.NoError(t, e.db.First(&recargado, e.lead.ID).Error)
	assert.True(t, recargado.Convertido)

	// la conversión queda en el historial
	var entrada historial.HistorialLead
	assert.NoError(t, e.db.Where("lead_id = ?", e.lead.ID).
		Order("id DESC").First(&entrada).Error)
	assert.Equal(t, "Lead convertido a contrato por Ana Torres.", entrada.Descripcion)
}

func TestConvertirLeadDosVeces(t *testing.T) {
	e := prepararEscenario(t)
	cv := contrato.NewConverter()

	_, _, err := cv.Convertir(e.db, e.lead.ID, &e.agente, "")
	assert.NoError(t, err)

	_, _, err = cv.Convertir(e.db, e.lead.ID, &e.agente, "")
	var ec *validacion.ErrorConflicto
	assert.ErrorAs(t, err, &ec)
	assert.Equal(t, "Este lead ya ha sido convertido en contrato anteriormente.", ec.Mensaje)

	total, err := cv.Contratos.ContarPorLead(e.db, e.lead.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestConvertirLeadInexistente(t *testing.T) {
	e := prepararEscenario(t)
	cv := contrato.NewConverter()

	_, _, err := cv.Convertir(e.db, 999, &e.agente, "")
	assert.ErrorIs(t, err, validacion.ErrNoEncontrado)
}

func TestConvertirObservaciones(t *testing.T) {
	e := prepararEscenario(t)
	cv := contrato.NewConverter()

	c, _, err := cv.Convertir(e.db, e.lead.ID, &e.agente, "Cliente pidió instalación el sábado")
	assert.NoError(t, err)
	assert.Equal(t, "Cliente pidió instalación el sábado", c.Observaciones)
}

// leadsDesactualizados devuelve el lead con el flag convertido sin refrescar,
// como lo vería una segunda conversión que leyó antes de que la primera
// confirmara.
type leadsDesactualizados struct {
	lead.Repository
}

func (r *leadsDesactualizados) BuscarPorID(db *gorm.DB, id uint) (*lead.Lead, error) {
	l, err := r.Repository.BuscarPorID(db, id)
	if err != nil {
		return nil, err
	}
	l.Convertido = false
	return l, nil
}

func TestConvertirCarreraPierdeElSegundo(t *testing.T) {
	e := prepararEscenario(t)
	cv := contrato.NewConverter()

	_, _, err := cv.Convertir(e.db, e.lead.ID, &e.agente, "")
	assert.NoError(t, err)

	// el perdedor pasa el pre-chequeo con su lectura vieja y recién choca
	// en el update condicional del flag
	cv.Leads = &leadsDesactualizados{Repository: lead.NewRepository()}
	_, _, err = cv.Convertir(e.db, e.lead.ID, &e.agente, "")
	var ec *validacion.ErrorConflicto
	assert.ErrorAs(t, err, &ec)
	assert.Equal(t, "Este lead ya ha sido convertido en contrato anteriormente.", ec.Mensaje)

	// el contrato que alcanzó a crear se revierte con la transacción
	total, err := cv.Contratos.ContarPorLead(e.db, e.lead.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)

	// y solo la conversión ganadora quedó en el historial
	var entradas int64
	assert.NoError(t, e.db.Model(&historial.HistorialLead{}).
		Where("lead_id = ?", e.lead.ID).Count(&entradas).Error)
	assert.Equal(t, int64(1), entradas)
}

func TestConvertirEsAtomico(t *testing.T) {
	e := prepararEscenario(t)
	cv := contrato.NewConverter()

	// si el registro en el historial falla, nada de la conversión persiste
	assert.NoError(t, e.db.Migrator().DropTable(&historial.HistorialLead{}))

	_, _, err := cv.Convertir(e.db, e.lead.ID, &e.agente, "")
	assert.Error(t, err)

	var recargado lead.Lead
	assert.NoError(t, e.db.First(&recargado, e.lead.ID).Error)
	assert.False(t, recargado.Convertido)

	total, err := cv.Contratos.ContarPorLead(e.db, e.lead.ID)
	assert.NoError(t, err)
	assert.Zero(t, total)
}
