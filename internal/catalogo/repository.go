package catalogo

import (
	"github.com/intelicom/api-crm/internal/validacion"
	"gorm.io/gorm"
)

// Elemento es la representación {id, nombre} común a todos los catálogos.
type Elemento struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
}

// Cada clave de catálogo se mapea estáticamente al modelo y a la columna
// que actúa como etiqueta. No se construyen tipos en tiempo de ejecución.
type entradaCatalogo struct {
	modelo      any
	campoNombre string
}

var catalogos = map[string]entradaCatalogo{
	"tipo-documento":     {&TipoDocumento{}, "nombre_tipo"},
	"transferencia":      {&Transferencia{}, "descripcion"},
	"tipo-vivienda":      {&TipoVivienda{}, "descripcion"},
	"tipo-base":          {&TipoBase{}, "descripcion"},
	"sector":             {&Sector{}, "nombre_sector"},
	"origen":             {&Origen{}, "nombre_origen"},
	"departamento":       {&Departamento{}, "nombre_departamento"},
	"tipo-contacto":      {&TipoContacto{}, "nombre_tipo"},
	"tipo-plan-contrato": {&TipoPlanContrato{}, "descripcion"},
}

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Listar devuelve todas las filas del catálogo indicado como pares {id, nombre}.
func (r *Repository) Listar(nombre string) ([]Elemento, error) {
	entrada, ok := catalogos[nombre]
	if !ok {
		return nil, validacion.ErrNoEncontrado
	}
	elementos := []Elemento{}
	err := r.DB.Model(entrada.modelo).
		Select("id, " + entrada.campoNombre + " AS nombre").
		Order("id").
		Scan(&elementos).Error
	return elementos, err
}

// ProvinciasPorDepartamento devuelve las provincias de un departamento.
// Un departamento sin provincias devuelve lista vacía, no error.
func (r *Repository) ProvinciasPorDepartamento(departamentoID uint) ([]Provincia, error) {
	provincias := []Provincia{}
	err := r.DB.Where("departamento_id = ?", departamentoID).Find(&provincias).Error
	return provincias, err
}

func (r *Repository) DistritosPorProvincia(provinciaID uint) ([]Distrito, error) {
	distritos := []Distrito{}
	err := r.DB.Where("provincia_id = ?", provinciaID).Find(&distritos).Error
	return distritos, err
}

func (r *Repository) SubtiposPorTipoContacto(tipoContactoID uint) ([]SubtipoContacto, error) {
	subtipos := []SubtipoContacto{}
	err := r.DB.Where("tipo_contacto_id = ?", tipoContactoID).Find(&subtipos).Error
	return subtipos, err
}
