package catalogo

import "gorm.io/gorm"

// Departamento es el primer nivel de la jerarquía geográfica.
type Departamento struct {
	ID                 uint   `gorm:"primaryKey" json:"id"`
	NombreDepartamento string `gorm:"size:100;uniqueIndex;not null" json:"nombre_departamento"`
}

type Provincia struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	NombreProvincia string       `gorm:"size:100;not null" json:"nombre_provincia"`
	DepartamentoID  uint         `gorm:"not null;index" json:"departamento_id"`
	Departamento    Departamento `gorm:"foreignKey:DepartamentoID;constraint:OnDelete:CASCADE" json:"-"`
}

type Distrito struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	NombreDistrito string    `gorm:"size:100;not null" json:"nombre_distrito"`
	ProvinciaID    uint      `gorm:"not null;index" json:"provincia_id"`
	Provincia      Provincia `gorm:"foreignKey:ProvinciaID;constraint:OnDelete:CASCADE" json:"-"`
}

type Origen struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	NombreOrigen string `gorm:"size:50;uniqueIndex;not null" json:"nombre_origen"`
	Descripcion  string `gorm:"type:text" json:"descripcion,omitempty"`
}

// TipoContacto y SubtipoContacto clasifican en dos niveles cómo se
// contactó al lead.
type TipoContacto struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	NombreTipo string `gorm:"size:50;uniqueIndex;not null" json:"nombre_tipo"`
}

type SubtipoContacto struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	Descripcion    string       `gorm:"size:100;uniqueIndex;not null" json:"descripcion"`
	TipoContactoID uint         `gorm:"not null;index" json:"tipo_contacto_id"`
	TipoContacto   TipoContacto `gorm:"foreignKey:TipoContactoID;constraint:OnDelete:CASCADE" json:"-"`
}

type ResultadoCobertura struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Descripcion string `gorm:"size:100;uniqueIndex;not null" json:"descripcion"`
}

// Transferencia es el motivo de derivación a otra área. Obligatorio en el
// lead cuando el subtipo de contacto es "Transferencia" bajo "No Contacto".
type Transferencia struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Descripcion string `gorm:"size:100;uniqueIndex;not null" json:"descripcion"`
}

type TipoVivienda struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Descripcion string `gorm:"size:100;uniqueIndex;not null" json:"descripcion"`
}

type TipoBase struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Descripcion string `gorm:"size:100;uniqueIndex;not null" json:"descripcion"`
}

type TipoPlanContrato struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Descripcion string `gorm:"size:100;uniqueIndex;not null" json:"descripcion"`
	Detalles    string `gorm:"type:text" json:"detalles,omitempty"`
}

type Sector struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	NombreSector string `gorm:"size:100;uniqueIndex;not null" json:"nombre_sector"`
}

type TipoDocumento struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	NombreTipo  string `gorm:"size:50;uniqueIndex;not null" json:"nombre_tipo"`
	Descripcion string `gorm:"type:text" json:"descripcion,omitempty"`
}

// Migrate crea las tablas de todos los catálogos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Departamento{},
		&Provincia{},
		&Distrito{},
		&Origen{},
		&TipoContacto{},
		&SubtipoContacto{},
		&ResultadoCobertura{},
		&Transferencia{},
		&TipoVivienda{},
		&TipoBase{},
		&TipoPlanContrato{},
		&Sector{},
		&TipoDocumento{},
	)
}
