package cobertura

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"strings"
	"time"
)

// Cliente consulta la API externa de cobertura. Mantiene las cookies de
// sesión entre solicitudes porque el proveedor las exige.
type Cliente struct {
	http *http.Client
	url  string
}

func NewCliente() *Cliente {
	jar, _ := cookiejar.New(nil)
	apiURL := os.Getenv("COBERTURA_API_URL")
	if apiURL == "" {
		apiURL = "https://nubyx.purpura.pe/admin/cobertura"
	}
	return &Cliente{
		http: &http.Client{Jar: jar, Timeout: 15 * time.Second},
		url:  apiURL,
	}
}

// Consultar envía las coordenadas como formulario y devuelve el mensaje de
// cobertura del proveedor, o "SIN_COBERTURA" si la respuesta no trae mensaje.
func (c *Cliente) Consultar(latitud, longitud string) (string, error) {
	form := url.Values{
		"latitud":  {latitud},
		"longitud": {longitud},
	}

	resp, err := c.http.Post(c.url, "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("consulta de cobertura: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("la API de cobertura respondió %d", resp.StatusCode)
	}

	var cuerpo struct {
		Mensaje string `json:"mensaje"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&cuerpo); err != nil {
		return "", fmt.Errorf("respuesta de cobertura inválida: %w", err)
	}
	if cuerpo.Mensaje == "" {
		return "SIN_COBERTURA", nil
	}
	return cuerpo.Mensaje, nil
}
