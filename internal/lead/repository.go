package lead

import (
	"errors"
	"strings"

	"github.com/intelicom/api-crm/internal/documento"
	"github.com/intelicom/api-crm/internal/historial"
	"github.com/intelicom/api-crm/internal/validacion"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Salvar(db *gorm.DB, l *Lead) error
	BuscarPorID(db *gorm.DB, id uint) (*Lead, error)
	ListarTodos(db *gorm.DB) ([]Lead, error)
	BuscarPorMovil(db *gorm.DB, fragmento string) ([]Lead, error)
	Eliminar(db *gorm.DB, id uint) error
}

type repositoryImpl struct {
	documentos documento.Repository
}

func NewRepository() Repository {
	return &repositoryImpl{documentos: documento.NewRepository()}
}

func preloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Origen").
		Preload("SubtipoContacto.TipoContacto").
		Preload("ResultadoCobertura").
		Preload("Transferencia").
		Preload("TipoVivienda").
		Preload("TipoBase").
		Preload("PlanContrato").
		Preload("Distrito").
		Preload("Sector").
		Preload("Dueno")
}

func (r *repositoryImpl) Salvar(db *gorm.DB, l *Lead) error {
	// Omit evita que un Save re-escriba las filas de catálogo precargadas.
	return db.Omit(clause.Associations).Save(l).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Lead, error) {
	var l Lead
	if err := preloads(db).First(&l, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validacion.ErrNoEncontrado
		}
		return nil, err
	}
	return &l, nil
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Lead, error) {
	var leads []Lead
	err := preloads(db).Order("id").Find(&leads).Error
	return leads, err
}

// BuscarPorMovil devuelve los leads cuyo número móvil contiene el fragmento,
// sin distinguir mayúsculas. La lista vacía no es un error.
func (r *repositoryImpl) BuscarPorMovil(db *gorm.DB, fragmento string) ([]Lead, error) {
	var leads []Lead
	patron := "%" + strings.ToLower(fragmento) + "%"
	err := preloads(db).
		Where("LOWER(numero_movil) LIKE ?", patron).
		Order("id").
		Find(&leads).Error
	return leads, err
}

// Eliminar borra el lead junto con su historial y desvincula sus documentos.
// Falla con conflicto si existe un contrato que referencia al lead: el
// contrato debe eliminarse primero.
func (r *repositoryImpl) Eliminar(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var l Lead
		if err := tx.First(&l, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return validacion.ErrNoEncontrado
			}
			return err
		}

		var contratos int64
		if err := tx.Table("contratos").Where("lead_id = ?", id).Count(&contratos).Error; err != nil {
			return err
		}
		if contratos > 0 {
			return &validacion.ErrorConflicto{
				Campo:   "lead",
				Mensaje: "El lead tiene un contrato asociado y no puede eliminarse.",
			}
		}

		if err := tx.Where("lead_id = ?", id).Delete(&historial.HistorialLead{}).Error; err != nil {
			return err
		}
		if err := r.documentos.DesvincularLead(tx, id); err != nil {
			return err
		}
		return tx.Delete(&Lead{}, id).Error
	})
}
