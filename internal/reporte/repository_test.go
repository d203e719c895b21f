package reporte_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/intelicom/api-crm/internal/catalogo"
	"github.com/intelicom/api-crm/internal/contrato"
	"github.com/intelicom/api-crm/internal/documento"
	"github.com/intelicom/api-crm/internal/historial"
	"github.com/intelicom/api-crm/internal/lead"
	"github.com/intelicom/api-crm/internal/reporte"
	"github.com/intelicom/api-crm/internal/usuario"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

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

func sembrar(t *testing.T, db *gorm.DB) {
	agente := usuario.Usuario{Username: "ana", Correo: "ana@intelicom.pe", Password: "x"}
	assert.NoError(t, db.Create(&agente).Error)
	tipo := catalogo.TipoContacto{NombreTipo: "Contacto"}
	assert.NoError(t, db.Create(&tipo).Error)
	subtipo := catalogo.SubtipoContacto{Descripcion: "Interesado", TipoContactoID: tipo.ID}
	assert.NoError(t, db.Create(&subtipo).Error)
	facebook := catalogo.Origen{NombreOrigen: "Facebook"}
	campo := catalogo.Origen{NombreOrigen: "Campo"}
	assert.NoError(t, db.Create(&facebook).Error)
	assert.NoError(t, db.Create(&campo).Error)

	crearLead := func(movil string, origenID uint) lead.Lead {
		l := lead.Lead{
			Nombre:            "Carlos",
			Apellido:          "Quispe",
			NumeroMovil:       movil,
			SubtipoContactoID: subtipo.ID,
			OrigenID:          &origenID,
			DuenoID:           agente.ID,
		}
		assert.NoError(t, db.Create(&l).Error)
		return l
	}

	convertido := crearLead("987654321", facebook.ID)
	crearLead("912345678", facebook.ID)
	crearLead("955554444", campo.ID)

	assert.NoError(t, db.Create(&contrato.Contrato{
		NombreContrato: "Carlos Quispe",
		LeadID:         convertido.ID,
		FechaInicio:    time.Now(),
	}).Error)
}

func TestLeadsPorOrigen(t *testing.T) {
	db := setupTestDB(t)
	sembrar(t, db)
	repo := reporte.NewRepository(db)

	total, err := repo.TotalLeads(reporte.RangoFechas{})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)

	contratos, err := repo.TotalContratos(reporte.RangoFechas{})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), contratos)

	filas, err := repo.LeadsPorOrigen(reporte.RangoFechas{})
	assert.NoError(t, err)
	assert.Len(t, filas, 2)
	// orden alfabético por origen
	assert.Equal(t, "Campo", filas[0].Origen)
	assert.Equal(t, int64(1), filas[0].TotalLeads)
	assert.Equal(t, "Facebook", filas[1].Origen)
	assert.Equal(t, int64(2), filas[1].TotalLeads)

	porOrigen, err := repo.ContratosPorOrigen(reporte.RangoFechas{})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), porOrigen["Facebook"])
	assert.Zero(t, porOrigen["Campo"])
}

func TestRangoFechasFiltra(t *testing.T) {
	db := setupTestDB(t)
	sembrar(t, db)
	repo := reporte.NewRepository(db)

	// mueve un lead fuera del rango
	antiguo := time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, db.Model(&lead.Lead{}).
		Where("numero_movil = ?", "955554444").
		Update("fecha_creacion", antiguo).Error)

	desde := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	total, err := repo.TotalLeads(reporte.RangoFechas{Desde: &desde})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)

	hasta := time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC)
	total, err = repo.TotalLeads(reporte.RangoFechas{Hasta: &hasta})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestReporteHandler(t *testing.T) {
	db := setupTestDB(t)
	sembrar(t, db)
	h := reporte.NewHandler(db)

	req := httptest.NewRequest("GET", "/reportes/leads-por-origen", nil)
	rec := httptest.NewRecorder()
	h.LeadsPorOrigen(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var respuesta struct {
		TotalLeadsGlobal     int64               `json:"total_leads_global"`
		TotalContratosGlobal int64               `json:"total_contratos_global"`
		DetallePorOrigen     []reporte.FilaOrigen `json:"detalle_por_origen"`
	}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&respuesta))
	assert.Equal(t, int64(3), respuesta.TotalLeadsGlobal)
	assert.Equal(t, int64(1), respuesta.TotalContratosGlobal)
	assert.Len(t, respuesta.DetallePorOrigen, 2)
	assert.Equal(t, int64(1), respuesta.DetallePorOrigen[1].TotalContratos)

	// fecha mal formada
	req = httptest.NewRequest("GET", "/reportes/leads-por-origen?fecha_inicio=15-01-2026", nil)
	rec = httptest.NewRecorder()
	h.LeadsPorOrigen(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
