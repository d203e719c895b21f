package documento

import (
	"errors"

	"github.com/intelicom/api-crm/internal/validacion"
	"gorm.io/gorm"
)

type Repository interface {
	Registrar(db *gorm.DB, d *Documento) error
	BuscarPorLead(db *gorm.DB, leadID uint) (*Documento, error)
	BuscarPorUsuario(db *gorm.DB, usuarioID uint) (*Documento, error)
	DesvincularLead(db *gorm.DB, leadID uint) error
	Eliminar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Registrar persiste el documento tras comprobar que el número no exista ya
// en el registro. El índice único de la tabla es el árbitro final ante
// escrituras concurrentes.
func (r *repositoryImpl) Registrar(db *gorm.DB, d *Documento) error {
	var total int64
	if err := db.Model(&Documento{}).
		Where("numero_documento = ?", d.NumeroDocumento).
		Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		return &validacion.ErrorConflicto{
			Campo:   "numero_documento",
			Mensaje: "El número de documento ya está registrado.",
		}
	}
	return db.Create(d).Error
}

// BuscarPorLead devuelve el primer documento asociado al lead, o nil si no
// tiene ninguno. La conversión trata la primera coincidencia como "el"
// documento del lead.
func (r *repositoryImpl) BuscarPorLead(db *gorm.DB, leadID uint) (*Documento, error) {
	var d Documento
	err := db.Preload("TipoDocumento").Where("lead_id = ?", leadID).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repositoryImpl) BuscarPorUsuario(db *gorm.DB, usuarioID uint) (*Documento, error) {
	var d Documento
	err := db.Preload("TipoDocumento").
		Where("usuario_id = ? AND lead_id IS NULL", usuarioID).
		First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// DesvincularLead pone en NULL la referencia al lead. Se usa al eliminar un
// lead: el documento sobrevive, la referencia no.
func (r *repositoryImpl) DesvincularLead(db *gorm.DB, leadID uint) error {
	return db.Model(&Documento{}).
		Where("lead_id = ?", leadID).
		Update("lead_id", nil).Error
}

func (r *repositoryImpl) Eliminar(db *gorm.DB, id uint) error {
	return db.Delete(&Documento{}, id).Error
}
