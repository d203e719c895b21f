package historial

import "gorm.io/gorm"

// TamanoPagina es el tamaño de página del modo paginado.
const TamanoPagina = 10

type Repository interface {
	Registrar(db *gorm.DB, h *HistorialLead) error
	ListarPorLead(db *gorm.DB, leadID uint) ([]HistorialLead, error)
	ListarPagina(db *gorm.DB, leadID uint, pagina int) ([]HistorialLead, int64, error)
	ContarPorLead(db *gorm.DB, leadID uint) (int64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Registrar agrega una entrada. La fecha la asigna el servidor al insertar.
func (r *repositoryImpl) Registrar(db *gorm.DB, h *HistorialLead) error {
	return db.Create(h).Error
}

func ordenado(db *gorm.DB, leadID uint) *gorm.DB {
	return db.
		Preload("Usuario").
		Preload("TipoContacto").
		Preload("SubtipoContacto").
		Where("lead_id = ?", leadID).
		Order("fecha DESC, id DESC")
}

// ListarPorLead devuelve todas las entradas del lead, las más recientes
// primero.
func (r *repositoryImpl) ListarPorLead(db *gorm.DB, leadID uint) ([]HistorialLead, error) {
	var entradas []HistorialLead
	err := ordenado(db, leadID).Find(&entradas).Error
	return entradas, err
}

// ListarPagina devuelve la página pedida (base 1) y el total de entradas.
func (r *repositoryImpl) ListarPagina(db *gorm.DB, leadID uint, pagina int) ([]HistorialLead, int64, error) {
	if pagina < 1 {
		pagina = 1
	}
	total, err := r.ContarPorLead(db, leadID)
	if err != nil {
		return nil, 0, err
	}
	var entradas []HistorialLead
	err = ordenado(db, leadID).
		Offset((pagina - 1) * TamanoPagina).
		Limit(TamanoPagina).
		Find(&entradas).Error
	return entradas, total, err
}

func (r *repositoryImpl) ContarPorLead(db *gorm.DB, leadID uint) (int64, error) {
	var total int64
	err := db.Model(&HistorialLead{}).Where("lead_id = ?", leadID).Count(&total).Error
	return total, err
}
