package lead

import "time"

// ReferenciaDTO expande una clave foránea como par {id, nombre}.
type ReferenciaDTO struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
}

// LeadDTO es la representación externa del lead: cada referencia a catálogo
// sale como objeto {id, nombre} en lugar de id suelto, y tipo_contacto se
// deriva del tipo padre del subtipo.
type LeadDTO struct {
	ID         uint   `json:"id"`
	NombreLead string `json:"nombre_lead"`
	Nombre     string `json:"nombre"`
	Apellido   string `json:"apellido"`

	NumeroMovil   string `json:"numero_movil"`
	NumeroTrabajo string `json:"numero_trabajo,omitempty"`
	NumeroFax     string `json:"numero_fax,omitempty"`

	NombreCompania string `json:"nombre_compania,omitempty"`
	Correo         string `json:"correo,omitempty"`
	Cargo          string `json:"cargo,omitempty"`
	Direccion      string `json:"direccion,omitempty"`
	Etiquetas      string `json:"etiquetas,omitempty"`
	SitioWeb       string `json:"sitio_web,omitempty"`
	Skype          string `json:"skype,omitempty"`
	Facebook       string `json:"facebook,omitempty"`
	Twitter        string `json:"twitter,omitempty"`
	Linkedin       string `json:"linkedin,omitempty"`
	Descripcion    string `json:"descripcion,omitempty"`
	Coordenadas    string `json:"coordenadas,omitempty"`

	Convertido bool `json:"convertido"`

	Origen             *ReferenciaDTO `json:"origen"`
	TipoContacto       *ReferenciaDTO `json:"tipo_contacto"`
	SubtipoContacto    *ReferenciaDTO `json:"subtipo_contacto"`
	ResultadoCobertura *ReferenciaDTO `json:"resultado_cobertura"`
	Transferencia      *ReferenciaDTO `json:"transferencia"`
	TipoVivienda       *ReferenciaDTO `json:"tipo_vivienda"`
	TipoBase           *ReferenciaDTO `json:"tipo_base"`
	PlanContrato       *ReferenciaDTO `json:"plan_contrato"`
	Distrito           *ReferenciaDTO `json:"distrito"`
	Sector             *ReferenciaDTO `json:"sector"`
	Dueno              *ReferenciaDTO `json:"dueno"`

	FechaCreacion time.Time `json:"fecha_creacion"`
}

// NuevoLeadDTO arma la representación externa a partir de un lead con sus
// relaciones precargadas.
func NuevoLeadDTO(l *Lead) LeadDTO {
	dto := LeadDTO{
		ID:             l.ID,
		NombreLead:     l.NombreLead,
		Nombre:         l.Nombre,
		Apellido:       l.Apellido,
		NumeroMovil:    l.NumeroMovil,
		NumeroTrabajo:  l.NumeroTrabajo,
		NumeroFax:      l.NumeroFax,
		NombreCompania: l.NombreCompania,
		Correo:         l.Correo,
		Cargo:          l.Cargo,
		Direccion:      l.Direccion,
		Etiquetas:      l.Etiquetas,
		SitioWeb:       l.SitioWeb,
		Skype:          l.Skype,
		Facebook:       l.Facebook,
		Twitter:        l.Twitter,
		Linkedin:       l.Linkedin,
		Descripcion:    l.Descripcion,
		Coordenadas:    l.Coordenadas,
		Convertido:     l.Convertido,
		FechaCreacion:  l.FechaCreacion,
	}

	if l.Origen != nil {
		dto.Origen = &ReferenciaDTO{ID: l.Origen.ID, Nombre: l.Origen.NombreOrigen}
	}
	if l.SubtipoContacto.ID != 0 {
		dto.SubtipoContacto = &ReferenciaDTO{ID: l.SubtipoContacto.ID, Nombre: l.SubtipoContacto.Descripcion}
		if l.SubtipoContacto.TipoContacto.ID != 0 {
			dto.TipoContacto = &ReferenciaDTO{
				ID:     l.SubtipoContacto.TipoContacto.ID,
				Nombre: l.SubtipoContacto.TipoContacto.NombreTipo,
			}
		}
	}
	if l.ResultadoCobertura != nil {
		dto.ResultadoCobertura = &ReferenciaDTO{ID: l.ResultadoCobertura.ID, Nombre: l.ResultadoCobertura.Descripcion}
	}
	if l.Transferencia != nil {
		dto.Transferencia = &ReferenciaDTO{ID: l.Transferencia.ID, Nombre: l.Transferencia.Descripcion}
	}
	if l.TipoVivienda != nil {
		dto.TipoVivienda = &ReferenciaDTO{ID: l.TipoVivienda.ID, Nombre: l.TipoVivienda.Descripcion}
	}
	if l.TipoBase != nil {
		dto.TipoBase = &ReferenciaDTO{ID: l.TipoBase.ID, Nombre: l.TipoBase.Descripcion}
	}
	if l.PlanContrato != nil {
		dto.PlanContrato = &ReferenciaDTO{ID: l.PlanContrato.ID, Nombre: l.PlanContrato.Descripcion}
	}
	if l.Distrito != nil {
		dto.Distrito = &ReferenciaDTO{ID: l.Distrito.ID, Nombre: l.Distrito.NombreDistrito}
	}
	if l.Sector != nil {
		dto.Sector = &ReferenciaDTO{ID: l.Sector.ID, Nombre: l.Sector.NombreSector}
	}
	if l.Dueno != nil {
		dto.Dueno = &ReferenciaDTO{ID: l.Dueno.ID, Nombre: l.Dueno.NombreCompleto()}
	}

	return dto
}

// NuevosLeadDTOs convierte una lista de leads precargados.
func NuevosLeadDTOs(leads []Lead) []LeadDTO {
	dtos := make([]LeadDTO, 0, len(leads))
	for i := range leads {
		dtos = append(dtos, NuevoLeadDTO(&leads[i]))
	}
	return dtos
}
