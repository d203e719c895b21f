package reporte

import (
	"time"

	"gorm.io/gorm"
)

// RangoFechas acota el reporte por fecha de creación del lead. Cualquiera
// de los dos extremos puede estar vacío.
type RangoFechas struct {
	Desde *time.Time
	Hasta *time.Time
}

// FilaOrigen es el detalle por origen del reporte.
type FilaOrigen struct {
	Origen         string `json:"origen"`
	TotalLeads     int64  `json:"total_leads"`
	TotalContratos int64  `json:"total_contratos"`
}

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) filtrarLeads(db *gorm.DB, rango RangoFechas) *gorm.DB {
	if rango.Desde != nil {
		db = db.Where("leads.fecha_creacion >= ?", *rango.Desde)
	}
	if rango.Hasta != nil {
		db = db.Where("leads.fecha_creacion <= ?", *rango.Hasta)
	}
	return db
}

// TotalLeads cuenta los leads creados dentro del rango.
func (r *Repository) TotalLeads(rango RangoFechas) (int64, error) {
	var total int64
	err := r.filtrarLeads(r.DB.Table("leads"), rango).Count(&total).Error
	return total, err
}

// TotalContratos cuenta los contratos cuyos leads se crearon dentro del rango.
func (r *Repository) TotalContratos(rango RangoFechas) (int64, error) {
	var total int64
	err := r.filtrarLeads(
		r.DB.Table("contratos").Joins("JOIN leads ON leads.id = contratos.lead_id"),
		rango,
	).Count(&total).Error
	return total, err
}

// LeadsPorOrigen agrupa los leads del rango por nombre de origen.
func (r *Repository) LeadsPorOrigen(rango RangoFechas) ([]FilaOrigen, error) {
	var filas []FilaOrigen
	err := r.filtrarLeads(r.DB.Table("leads"), rango).
		Select("origens.nombre_origen AS origen, COUNT(leads.id) AS total_leads").
		Joins("JOIN origens ON origens.id = leads.origen_id").
		Group("origens.nombre_origen").
		Order("origens.nombre_origen").
		Scan(&filas).Error
	return filas, err
}

// ContratosPorOrigen agrupa los contratos del rango por el origen del lead.
func (r *Repository) ContratosPorOrigen(rango RangoFechas) (map[string]int64, error) {
	var filas []struct {
		Origen string
		Total  int64
	}
	err := r.filtrarLeads(
		r.DB.Table("contratos").Joins("JOIN leads ON leads.id = contratos.lead_id"),
		rango,
	).
		Select("origens.nombre_origen AS origen, COUNT(contratos.id) AS total").
		Joins("JOIN origens ON origens.id = leads.origen_id").
		Group("origens.nombre_origen").
		Scan(&filas).Error
	if err != nil {
		return nil, err
	}
	porOrigen := make(map[string]int64, len(filas))
	for _, f := range filas {
		porOrigen[f.Origen] = f.Total
	}
	return porOrigen, nil
}
