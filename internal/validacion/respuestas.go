package validacion

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"gorm.io/gorm"
)

// ResponderJSON escribe v como JSON con el status indicado.
func ResponderJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ResponderMensaje escribe un cuerpo {"message": ...}.
func ResponderMensaje(w http.ResponseWriter, status int, mensaje string) {
	ResponderJSON(w, status, map[string]string{"message": mensaje})
}

// ResponderError traduce el tipo de error al status HTTP y cuerpo JSON
// correspondiente. Los errores de validación devuelven el mapa campo→mensaje;
// todo lo demás devuelve {"error": ...}.
func ResponderError(w http.ResponseWriter, err error) {
	var ev *ErrorValidacion
	if errors.As(err, &ev) {
		ResponderJSON(w, http.StatusBadRequest, ev.Campos)
		return
	}

	var ec *ErrorConflicto
	if errors.As(err, &ec) {
		ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": ec.Mensaje})
		return
	}

	if errors.Is(err, ErrNoEncontrado) || errors.Is(err, gorm.ErrRecordNotFound) {
		ResponderJSON(w, http.StatusNotFound, map[string]string{"error": "Recurso no encontrado."})
		return
	}

	log.Printf("error interno: %v", err)
	ResponderJSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno del servidor."})
}
