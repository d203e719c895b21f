package historial

import (
	"time"

	"github.com/intelicom/api-crm/internal/catalogo"
	"github.com/intelicom/api-crm/internal/usuario"
)

// HistorialLead es una entrada del registro de auditoría de un lead.
// Las entradas solo se agregan: ninguna operación normal las modifica
// ni las borra, salvo la eliminación en cascada del propio lead.
type HistorialLead struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	LeadID uint  `gorm:"not null;index" json:"lead_id"`

	// Nullable: el usuario puede eliminarse sin destruir el historial.
	UsuarioID *uint            `json:"usuario_id,omitempty"`
	Usuario   *usuario.Usuario `gorm:"foreignKey:UsuarioID;constraint:OnDelete:SET NULL" json:"-"`

	Descripcion string    `gorm:"type:text;not null" json:"descripcion"`
	Fecha       time.Time `gorm:"autoCreateTime;index" json:"fecha"`

	// Clasificación capturada en el momento del evento, no la vigente.
	TipoContactoID *uint                  `json:"tipo_contacto_id,omitempty"`
	TipoContacto   *catalogo.TipoContacto `gorm:"foreignKey:TipoContactoID" json:"-"`

	SubtipoContactoID *uint                     `json:"subtipo_contacto_id,omitempty"`
	SubtipoContacto   *catalogo.SubtipoContacto `gorm:"foreignKey:SubtipoContactoID" json:"-"`
}
