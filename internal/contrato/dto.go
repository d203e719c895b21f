package contrato

import "time"

type referenciaDTO struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
}

type ContratoDTO struct {
	ID             uint           `json:"id"`
	NombreContrato string         `json:"nombre_contrato"`
	Nombre         string         `json:"nombre"`
	Apellido       string         `json:"apellido"`
	NumeroMovil    string         `json:"numero_movil"`
	PlanContrato   *referenciaDTO `json:"plan_contrato"`
	TipoDocumento  *referenciaDTO `json:"tipo_documento"`
	NumeroDocumento string        `json:"numero_documento,omitempty"`
	Origen         *referenciaDTO `json:"origen"`
	Coordenadas    string         `json:"coordenadas,omitempty"`
	LeadID         uint           `json:"lead_id"`
	FechaInicio    time.Time      `json:"fecha_inicio"`
	FechaFin       *time.Time     `json:"fecha_fin,omitempty"`
	Observaciones  string         `json:"observaciones,omitempty"`
}

func NuevoContratoDTO(c *Contrato) ContratoDTO {
	dto := ContratoDTO{
		ID:              c.ID,
		NombreContrato:  c.NombreContrato,
		Nombre:          c.Nombre,
		Apellido:        c.Apellido,
		NumeroMovil:     c.NumeroMovil,
		NumeroDocumento: c.NumeroDocumento,
		Coordenadas:     c.Coordenadas,
		LeadID:          c.LeadID,
		FechaInicio:     c.FechaInicio,
		FechaFin:        c.FechaFin,
		Observaciones:   c.Observaciones,
	}
	if c.PlanContrato != nil {
		dto.PlanContrato = &referenciaDTO{ID: c.PlanContrato.ID, Nombre: c.PlanContrato.Descripcion}
	}
	if c.TipoDocumento != nil {
		dto.TipoDocumento = &referenciaDTO{ID: c.TipoDocumento.ID, Nombre: c.TipoDocumento.NombreTipo}
	}
	if c.Origen != nil {
		dto.Origen = &referenciaDTO{ID: c.Origen.ID, Nombre: c.Origen.NombreOrigen}
	}
	return dto
}

func NuevosContratoDTOs(contratos []Contrato) []ContratoDTO {
	dtos := make([]ContratoDTO, 0, len(contratos))
	for i := range contratos {
		dtos = append(dtos, NuevoContratoDTO(&contratos[i]))
	}
	return dtos
}
