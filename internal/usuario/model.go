package usuario

import "time"

// Usuario es un agente o administrador de la plataforma.
type Usuario struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Username      string    `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Correo        string    `gorm:"size:100;uniqueIndex" json:"correo"`
	Nombres       string    `gorm:"size:100" json:"nombres"`
	Apellidos     string    `gorm:"size:100" json:"apellidos"`
	Telefono      string    `gorm:"size:15" json:"telefono"`
	Direccion     string    `gorm:"size:255" json:"direccion"`
	Password      string    `gorm:"not null" json:"-"`
	EsAdmin       bool      `gorm:"default:false" json:"es_admin"`
	Activo        bool      `gorm:"default:true" json:"activo"`
	FechaCreacion time.Time `gorm:"autoCreateTime" json:"fecha_creacion"`
}

// NombreCompleto se usa en las descripciones del historial.
func (u *Usuario) NombreCompleto() string {
	if u == nil {
		return ""
	}
	return u.Nombres + " " + u.Apellidos
}
