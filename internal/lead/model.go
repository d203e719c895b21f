package lead

import (
	"time"

	"github.com/intelicom/api-crm/internal/catalogo"
	"github.com/intelicom/api-crm/internal/usuario"
)

// Lead es un cliente potencial previo a la firma de contrato. El flag
// Convertido es monotónico: una vez en true nunca vuelve a false, y solo
// lo cambia la operación de conversión.
type Lead struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	NombreLead string `gorm:"size:100" json:"nombre_lead"`
	Nombre     string `gorm:"size:100;not null" json:"nombre"`
	Apellido   string `gorm:"size:100;not null" json:"apellido"`

	NumeroMovil   string `gorm:"size:15;uniqueIndex;not null" json:"numero_movil"`
	NumeroTrabajo string `gorm:"size:15" json:"numero_trabajo,omitempty"`
	NumeroFax     string `gorm:"size:15" json:"numero_fax,omitempty"`

	NombreCompania string `gorm:"size:100" json:"nombre_compania,omitempty"`
	Correo         string `gorm:"size:100" json:"correo,omitempty"`
	Cargo          string `gorm:"size:100" json:"cargo,omitempty"`
	Direccion      string `gorm:"size:255" json:"direccion,omitempty"`
	Etiquetas      string `gorm:"type:text" json:"etiquetas,omitempty"`
	SitioWeb       string `gorm:"size:100" json:"sitio_web,omitempty"`
	Skype          string `gorm:"size:100" json:"skype,omitempty"`
	Facebook       string `gorm:"size:100" json:"facebook,omitempty"`
	Twitter        string `gorm:"size:100" json:"twitter,omitempty"`
	Linkedin       string `gorm:"size:100" json:"linkedin,omitempty"`
	Descripcion    string `gorm:"type:text" json:"descripcion,omitempty"`

	// "lat, lon" normalizado al escribir
	Coordenadas string `gorm:"size:100" json:"coordenadas,omitempty"`

	Convertido bool `gorm:"not null;default:false" json:"convertido"`

	OrigenID *uint            `json:"origen_id,omitempty"`
	Origen   *catalogo.Origen `gorm:"foreignKey:OrigenID" json:"-"`

	SubtipoContactoID uint                     `gorm:"not null" json:"subtipo_contacto_id"`
	SubtipoContacto   catalogo.SubtipoContacto `gorm:"foreignKey:SubtipoContactoID" json:"-"`

	ResultadoCoberturaID *uint                        `json:"resultado_cobertura_id,omitempty"`
	ResultadoCobertura   *catalogo.ResultadoCobertura `gorm:"foreignKey:ResultadoCoberturaID" json:"-"`

	TransferenciaID *uint                   `json:"transferencia_id,omitempty"`
	Transferencia   *catalogo.Transferencia `gorm:"foreignKey:TransferenciaID" json:"-"`

	TipoViviendaID *uint                  `json:"tipo_vivienda_id,omitempty"`
	TipoVivienda   *catalogo.TipoVivienda `gorm:"foreignKey:TipoViviendaID" json:"-"`

	TipoBaseID *uint              `json:"tipo_base_id,omitempty"`
	TipoBase   *catalogo.TipoBase `gorm:"foreignKey:TipoBaseID" json:"-"`

	PlanContratoID *uint                      `json:"plan_contrato_id,omitempty"`
	PlanContrato   *catalogo.TipoPlanContrato `gorm:"foreignKey:PlanContratoID" json:"-"`

	DistritoID *uint              `json:"distrito_id,omitempty"`
	Distrito   *catalogo.Distrito `gorm:"foreignKey:DistritoID" json:"-"`

	SectorID *uint            `json:"sector_id,omitempty"`
	Sector   *catalogo.Sector `gorm:"foreignKey:SectorID" json:"-"`

	DuenoID uint             `gorm:"not null" json:"dueno_id"`
	Dueno   *usuario.Usuario `gorm:"foreignKey:DuenoID" json:"-"`

	FechaCreacion time.Time `gorm:"autoCreateTime" json:"fecha_creacion"`
}
