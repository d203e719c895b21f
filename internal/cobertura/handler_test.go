package cobertura_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/intelicom/api-crm/internal/cobertura"
	"github.com/stretchr/testify/assert"
)

func consultar(t *testing.T, h *cobertura.Handler, cuerpo any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	assert.NoError(t, json.NewEncoder(&body).Encode(cuerpo))
	req := httptest.NewRequest("POST", "/cobertura", &body)
	rec := httptest.NewRecorder()
	h.Consultar(rec, req)
	return rec
}

func TestConsultarCobertura(t *testing.T) {
	proveedor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "-12.04641", r.Form.Get("latitud"))
		assert.Equal(t, "-77.04277", r.Form.Get("longitud"))
		_ = json.NewEncoder(w).Encode(map[string]string{"mensaje": "CON_COBERTURA FTTH"})
	}))
	defer proveedor.Close()
	t.Setenv("COBERTURA_API_URL", proveedor.URL)

	h := cobertura.NewHandler()
	rec := consultar(t, h, map[string]string{"coordenadas": "-12.04641, -77.04277"})
	assert.Equal(t, http.StatusOK, rec.Code)

	var respuesta map[string]string
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&respuesta))
	assert.Equal(t, "CON_COBERTURA FTTH", respuesta["resultado_cobertura"])
}

func TestConsultarCoberturaSinMensaje(t *testing.T) {
	proveedor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer proveedor.Close()
	t.Setenv("COBERTURA_API_URL", proveedor.URL)

	h := cobertura.NewHandler()
	rec := consultar(t, h, map[string]string{"coordenadas": "-12.04641, -77.04277"})
	assert.Equal(t, http.StatusOK, rec.Code)

	var respuesta map[string]string
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&respuesta))
	assert.Equal(t, "SIN_COBERTURA", respuesta["resultado_cobertura"])
}

func TestConsultarCoberturaEntradaInvalida(t *testing.T) {
	h := cobertura.NewHandler()

	rec := consultar(t, h, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = consultar(t, h, map[string]string{"coordenadas": "-12.04641"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConsultarCoberturaProveedorCaido(t *testing.T) {
	proveedor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer proveedor.Close()
	t.Setenv("COBERTURA_API_URL", proveedor.URL)

	h := cobertura.NewHandler()
	rec := consultar(t, h, map[string]string{"coordenadas": "-12.04641, -77.04277"})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
