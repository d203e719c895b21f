package validacion

import (
	"errors"
	"strings"
)

// ErrNoEncontrado indica que la entidad referenciada no existe.
var ErrNoEncontrado = errors.New("recurso no encontrado")

// ErrorValidacion agrupa los errores de entrada por campo, para que el
// front pueda mostrar el mensaje junto al campo correspondiente.
type ErrorValidacion struct {
	Campos map[string]string
}

func (e *ErrorValidacion) Error() string {
	partes := make([]string, 0, len(e.Campos))
	for campo, mensaje := range e.Campos {
		partes = append(partes, campo+": "+mensaje)
	}
	return strings.Join(partes, "; ")
}

// NuevoErrorValidacion crea un error de validación con un solo campo.
func NuevoErrorValidacion(campo, mensaje string) *ErrorValidacion {
	return &ErrorValidacion{Campos: map[string]string{campo: mensaje}}
}

// ErrorConflicto es un rechazo dependiente del estado actual (móvil duplicado,
// documento duplicado, lead ya convertido). Se distingue de ErrorValidacion
// para que el cliente pueda ramificar por tipo y no por texto.
type ErrorConflicto struct {
	Campo   string
	Mensaje string
}

func (e *ErrorConflicto) Error() string { return e.Mensaje }
