package lead

import (
	"errors"
	"strconv"
	"strings"
)

// ErrCoordenadasInvalidas se devuelve cuando el string no tiene la forma
// "latitud, longitud".
var ErrCoordenadasInvalidas = errors.New("formato incorrecto de coordenadas")

// NormalizarCoordenadas valida y reescribe "lat, lon" con precisión mínima:
// sin ceros finales y con un único espacio tras la coma.
func NormalizarCoordenadas(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	partes := strings.Split(s, ",")
	if len(partes) != 2 {
		return "", ErrCoordenadasInvalidas
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(partes[0]), 64)
	if err != nil {
		return "", ErrCoordenadasInvalidas
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(partes[1]), 64)
	if err != nil {
		return "", ErrCoordenadasInvalidas
	}
	return strconv.FormatFloat(lat, 'f', -1, 64) + ", " + strconv.FormatFloat(lon, 'f', -1, 64), nil
}
