package reporte

import (
	"net/http"
	"strconv"
	"time"

	"github.com/intelicom/api-crm/internal/validacion"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository(db)}
}

// rangoDesdeQuery arma el rango de fechas a partir de fecha_inicio/fecha_fin
// (YYYY-MM-DD) o de mes/anio. Mes y año se traducen a un rango [inicio, fin)
// en lugar de funciones de fecha del motor, para no atar la consulta a un
// dialecto.
func rangoDesdeQuery(r *http.Request) (RangoFechas, error) {
	q := r.URL.Query()
	var rango RangoFechas

	if v := q.Get("fecha_inicio"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return rango, err
		}
		rango.Desde = &t
	}
	if v := q.Get("fecha_fin"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return rango, err
		}
		fin := t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		rango.Hasta = &fin
	}

	anio, errAnio := strconv.Atoi(q.Get("anio"))
	mes, errMes := strconv.Atoi(q.Get("mes"))
	switch {
	case errAnio == nil && errMes == nil:
		desde := time.Date(anio, time.Month(mes), 1, 0, 0, 0, 0, time.UTC)
		hasta := desde.AddDate(0, 1, 0).Add(-time.Nanosecond)
		rango.Desde, rango.Hasta = &desde, &hasta
	case errAnio == nil:
		desde := time.Date(anio, time.January, 1, 0, 0, 0, 0, time.UTC)
		hasta := desde.AddDate(1, 0, 0).Add(-time.Nanosecond)
		rango.Desde, rango.Hasta = &desde, &hasta
	}

	return rango, nil
}

// LeadsPorOrigen atiende GET /reportes/leads-por-origen
func (h *Handler) LeadsPorOrigen(w http.ResponseWriter, r *http.Request) {
	rango, err := rangoDesdeQuery(r)
	if err != nil {
		validacion.ResponderJSON(w, http.StatusBadRequest,
			map[string]string{"error": "Formato de fecha incorrecto. Debe ser YYYY-MM-DD."})
		return
	}

	totalLeads, err := h.Repository.TotalLeads(rango)
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}
	totalContratos, err := h.Repository.TotalContratos(rango)
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}
	detalle, err := h.Repository.LeadsPorOrigen(rango)
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}
	contratosPorOrigen, err := h.Repository.ContratosPorOrigen(rango)
	if err != nil {
		validacion.ResponderError(w, err)
		return
	}
	for i := range detalle {
		detalle[i].TotalContratos = contratosPorOrigen[detalle[i].Origen]
	}

	validacion.ResponderJSON(w, http.StatusOK, map[string]any{
		"total_leads_global":     totalLeads,
		"total_contratos_global": totalContratos,
		"detalle_por_origen":     detalle,
	})
}
