package documento

import "github.com/intelicom/api-crm/internal/catalogo"

// Documento asocia un número de documento de identidad único a un lead o
// a un usuario de la plataforma. El número es único en todo el registro,
// sin importar a quién pertenezca.
type Documento struct {
	ID              uint                   `gorm:"primaryKey" json:"id"`
	TipoDocumentoID uint                   `gorm:"not null" json:"tipo_documento_id"`
	TipoDocumento   catalogo.TipoDocumento `gorm:"foreignKey:TipoDocumentoID" json:"tipo_documento"`
	NumeroDocumento string                 `gorm:"size:20;uniqueIndex;not null" json:"numero_documento"`
	LeadID          *uint                  `gorm:"index" json:"lead_id,omitempty"`
	UsuarioID       uint                   `gorm:"not null;index" json:"usuario_id"`
}
