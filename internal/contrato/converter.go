package contrato

import (
	"fmt"
	"time"

	"github.com/intelicom/api-crm/internal/documento"
	"github.com/intelicom/api-crm/internal/historial"
	"github.com/intelicom/api-crm/internal/lead"
	"github.com/intelicom/api-crm/internal/usuario"
	"github.com/intelicom/api-crm/internal/validacion"
	"gorm.io/gorm"
)

// ObservacionesPorDefecto se usa cuando el caller no envía observaciones.
const ObservacionesPorDefecto = "Contrato generado desde el lead"

// Converter ejecuta la transición de estado lead → contrato. Es la única
// vía por la que el flag convertido pasa a true.
type Converter struct {
	Leads      lead.Repository
	Documentos documento.Repository
	Historial  historial.Repository
	Contratos  Repository
}

func NewConverter() *Converter {
	return &Converter{
		Leads:      lead.NewRepository(),
		Documentos: documento.NewRepository(),
		Historial:  historial.NewRepository(),
		Contratos:  NewRepository(),
	}
}

// Convertir crea el contrato a partir del lead, marca el lead como
// convertido y registra la conversión en el historial, todo dentro de una
// transacción: si cualquier paso falla no queda ningún efecto visible.
//
// El flip del flag es un compare-and-set sobre la fila del lead: de dos
// conversiones concurrentes solo una observa convertido == false; la otra
// afecta cero filas y la transacción se revierte con el conflicto, por lo
// que nunca se persisten dos contratos para el mismo lead.
func (cv *Converter) Convertir(db *gorm.DB, leadID uint, actor *usuario.Usuario, observaciones string) (*Contrato, *lead.Lead, error) {
	l, err := cv.Leads.BuscarPorID(db, leadID)
	if err != nil {
		return nil, nil, err
	}
	if l.Convertido {
		return nil, nil, errYaConvertido()
	}

	doc, err := cv.Documentos.BuscarPorLead(db, leadID)
	if err != nil {
		return nil, nil, err
	}

	if observaciones == "" {
		observaciones = ObservacionesPorDefecto
	}

	c := &Contrato{
		NombreContrato: l.Nombre + " " + l.Apellido,
		Nombre:         l.Nombre,
		Apellido:       l.Apellido,
		NumeroMovil:    l.NumeroMovil,
		PlanContratoID: l.PlanContratoID,
		OrigenID:       l.OrigenID,
		Coordenadas:    l.Coordenadas,
		LeadID:         l.ID,
		FechaInicio:    time.Now(),
		Observaciones:  observaciones,
	}
	if doc != nil {
		c.TipoDocumentoID = &doc.TipoDocumentoID
		c.NumeroDocumento = doc.NumeroDocumento
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := cv.Contratos.Crear(tx, c); err != nil {
			return err
		}

		res := tx.Model(&lead.Lead{}).
			Where("id = ? AND convertido = ?", l.ID, false).
			Update("convertido", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// otro caller convirtió el lead entre la lectura y el update
			return errYaConvertido()
		}

		return cv.Historial.Registrar(tx, &historial.HistorialLead{
			LeadID:      l.ID,
			UsuarioID:   &actor.ID,
			Descripcion: fmt.Sprintf("Lead convertido a contrato por %s.", actor.NombreCompleto()),
		})
	})
	if err != nil {
		return nil, nil, err
	}

	l.Convertido = true
	return c, l, nil
}

func errYaConvertido() error {
	return &validacion.ErrorConflicto{
		Campo:   "convertido",
		Mensaje: "Este lead ya ha sido convertido en contrato anteriormente.",
	}
}
