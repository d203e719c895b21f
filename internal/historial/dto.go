package historial

import "time"

type referenciaDTO struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
}

type EntradaDTO struct {
	ID              uint           `json:"id"`
	LeadID          uint           `json:"lead_id"`
	Descripcion     string         `json:"descripcion"`
	Fecha           time.Time      `json:"fecha"`
	Usuario         *referenciaDTO `json:"usuario"`
	TipoContacto    *referenciaDTO `json:"tipo_contacto"`
	SubtipoContacto *referenciaDTO `json:"subtipo_contacto"`
}

// PaginaDTO envuelve el modo paginado del historial.
type PaginaDTO struct {
	Count    int64        `json:"count"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
	Results  []EntradaDTO `json:"results"`
}

func NuevaEntradaDTO(h *HistorialLead) EntradaDTO {
	dto := EntradaDTO{
		ID:          h.ID,
		LeadID:      h.LeadID,
		Descripcion: h.Descripcion,
		Fecha:       h.Fecha,
	}
	if h.Usuario != nil {
		dto.Usuario = &referenciaDTO{ID: h.Usuario.ID, Nombre: h.Usuario.NombreCompleto()}
	}
	if h.TipoContacto != nil {
		dto.TipoContacto = &referenciaDTO{ID: h.TipoContacto.ID, Nombre: h.TipoContacto.NombreTipo}
	}
	if h.SubtipoContacto != nil {
		dto.SubtipoContacto = &referenciaDTO{ID: h.SubtipoContacto.ID, Nombre: h.SubtipoContacto.Descripcion}
	}
	return dto
}

func NuevasEntradaDTOs(entradas []HistorialLead) []EntradaDTO {
	dtos := make([]EntradaDTO, 0, len(entradas))
	for i := range entradas {
		dtos = append(dtos, NuevaEntradaDTO(&entradas[i]))
	}
	return dtos
}
