package lead_test

import (
	"testing"
	"time"

	"github.com/intelicom/api-crm/internal/contrato"
	"github.com/intelicom/api-crm/internal/documento"
	"github.com/intelicom/api-crm/internal/historial"
	"github.com/intelicom/api-crm/internal/lead"
	"github.com/intelicom/api-crm/internal/validacion"
	"github.com/stretchr/testify/assert"
)

func TestBuscarPorMovil(t *testing.T) {
	db := setupTestDB(t)
	d := seedBase(t, db)
	repo := lead.NewRepository()

	assert.NoError(t, db.Create(nuevoLead(d, "987654321")).Error)
	assert.NoError(t, db.Create(nuevoLead(d, "912345678")).Error)

	leads, err := repo.BuscarPorMovil(db, "87654")
	assert.NoError(t, err)
	assert.Len(t, leads, 1)
	assert.Equal(t, "987654321", leads[0].NumeroMovil)

	vacios, err := repo.BuscarPorMovil(db, "00000")
	assert.NoError(t, err)
	assert.Empty(t, vacios)
}

func TestEliminarCascadas(t *testing.T) {
	db := setupTestDB(t)
	d := seedBase(t, db)
	repo := lead.NewRepository()

	l := nuevoLead(d, "987654321")
	assert.NoError(t, db.Create(l).Error)
	assert.NoError(t, db.Create(&historial.HistorialLead{
		LeadID: l.ID, UsuarioID: &d.Agente.ID, Descripcion: "Lead creado por Ana Torres.",
	}).Error)
	doc := documento.Documento{
		TipoDocumentoID: d.TipoDNI.ID,
		NumeroDocumento: "45678912",
		LeadID:          &l.ID,
		UsuarioID:       d.Agente.ID,
	}
	assert.NoError(t, db.Create(&doc).Error)

	assert.NoError(t, repo.Eliminar(db, l.ID))

	var entradas int64
	assert.NoError(t, db.Model(&historial.HistorialLead{}).Where("lead_id = ?", l.ID).Count(&entradas).Error)
	assert.Zero(t, entradas)

	// el documento sobrevive sin la referencia al lead
	var recargado documento.Documento
	assert.NoError(t, db.First(&recargado, doc.ID).Error)
	assert.Nil(t, recargado.LeadID)

	_, err := repo.BuscarPorID(db, l.ID)
	assert.ErrorIs(t, err, validacion.ErrNoEncontrado)
}

func TestEliminarBloqueadoPorContrato(t *testing.T) {
	db := setupTestDB(t)
	d := seedBase(t, db)
	repo := lead.NewRepository()

	l := nuevoLead(d, "987654321")
	assert.NoError(t, db.Create(l).Error)
	assert.NoError(t, db.Create(&contrato.Contrato{
		NombreContrato: "Carlos Quispe",
		LeadID:         l.ID,
		FechaInicio:    time.Now(),
	}).Error)

	err := repo.Eliminar(db, l.ID)
	var ec *validacion.ErrorConflicto
	assert.ErrorAs(t, err, &ec)
	assert.Equal(t, "El lead tiene un contrato asociado y no puede eliminarse.", ec.Mensaje)

	// el lead sigue existiendo
	var total int64
	assert.NoError(t, db.Model(&lead.Lead{}).Where("id = ?", l.ID).Count(&total).Error)
	assert.Equal(t, int64(1), total)
}

func TestEliminarInexistente(t *testing.T) {
	db := setupTestDB(t)
	seedBase(t, db)
	repo := lead.NewRepository()

	err := repo.Eliminar(db, 999)
	assert.ErrorIs(t, err, validacion.ErrNoEncontrado)
}
