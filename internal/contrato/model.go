package contrato

import (
	"time"

	"github.com/intelicom/api-crm/internal/catalogo"
	"github.com/intelicom/api-crm/internal/lead"
)

// Contrato es el acuerdo de servicio firmado, derivado de exactamente un
// lead convertido. Los datos del lead se copian al momento de la
// conversión; el número móvil queda de solo lectura.
type Contrato struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	NombreContrato string `gorm:"size:100;not null" json:"nombre_contrato"`
	Nombre         string `gorm:"size:100" json:"nombre"`
	Apellido       string `gorm:"size:100" json:"apellido"`
	NumeroMovil    string `gorm:"size:15" json:"numero_movil"`

	PlanContratoID *uint                      `json:"plan_contrato_id,omitempty"`
	PlanContrato   *catalogo.TipoPlanContrato `gorm:"foreignKey:PlanContratoID" json:"-"`

	TipoDocumentoID *uint                   `json:"tipo_documento_id,omitempty"`
	TipoDocumento   *catalogo.TipoDocumento `gorm:"foreignKey:TipoDocumentoID" json:"-"`
	NumeroDocumento string                  `gorm:"size:20" json:"numero_documento,omitempty"`

	OrigenID *uint            `json:"origen_id,omitempty"`
	Origen   *catalogo.Origen `gorm:"foreignKey:OrigenID" json:"-"`

	Coordenadas string `gorm:"size:100" json:"coordenadas,omitempty"`

	LeadID uint      `gorm:"not null;index" json:"lead_id"`
	Lead   lead.Lead `gorm:"foreignKey:LeadID" json:"-"`

	FechaInicio   time.Time  `gorm:"not null" json:"fecha_inicio"`
	FechaFin      *time.Time `json:"fecha_fin,omitempty"`
	Observaciones string     `gorm:"type:text" json:"observaciones,omitempty"`
}
