package contrato

import (
	"errors"

	"github.com/intelicom/api-crm/internal/validacion"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Crear(db *gorm.DB, c *Contrato) error
	BuscarPorID(db *gorm.DB, id uint) (*Contrato, error)
	ListarTodos(db *gorm.DB) ([]Contrato, error)
	ContarPorLead(db *gorm.DB, leadID uint) (int64, error)
	Salvar(db *gorm.DB, c *Contrato) error
	Eliminar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func preloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("PlanContrato").
		Preload("TipoDocumento").
		Preload("Origen")
}

func (r *repositoryImpl) Crear(db *gorm.DB, c *Contrato) error {
	return db.Omit(clause.Associations).Create(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Contrato, error) {
	var c Contrato
	if err := preloads(db).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validacion.ErrNoEncontrado
		}
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Contrato, error) {
	var contratos []Contrato
	err := preloads(db).Order("id").Find(&contratos).Error
	return contratos, err
}

func (r *repositoryImpl) ContarPorLead(db *gorm.DB, leadID uint) (int64, error) {
	var total int64
	err := db.Model(&Contrato{}).Where("lead_id = ?", leadID).Count(&total).Error
	return total, err
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *Contrato) error {
	return db.Omit(clause.Associations).Save(c).Error
}

func (r *repositoryImpl) Eliminar(db *gorm.DB, id uint) error {
	return db.Delete(&Contrato{}, id).Error
}
