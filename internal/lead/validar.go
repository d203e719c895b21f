package lead

import (
	"errors"

	"github.com/intelicom/api-crm/internal/catalogo"
	"github.com/intelicom/api-crm/internal/validacion"
	"gorm.io/gorm"
)

// LargoMinimoMovil es la longitud mínima aceptada para el número móvil.
const LargoMinimoMovil = 9

const mensajeObligatorio = "Este campo es obligatorio."

// Validar aplica las reglas de negocio del lead antes de persistirlo.
// excluirID permite que una actualización conserve su propio número móvil;
// en creación se pasa 0.
//
// Reglas: nombre, apellido, número móvil y subtipo de contacto son
// obligatorios; el móvil tiene al menos LargoMinimoMovil caracteres y es
// único entre todos los leads; si el subtipo resuelve a "Transferencia"
// bajo el tipo "No Contacto", el motivo de transferencia es obligatorio.
func Validar(db *gorm.DB, l *Lead, excluirID uint) error {
	campos := map[string]string{}

	if l.Nombre == "" {
		campos["nombre"] = mensajeObligatorio
	}
	if l.Apellido == "" {
		campos["apellido"] = mensajeObligatorio
	}
	if l.SubtipoContactoID == 0 {
		campos["subtipo_contacto"] = mensajeObligatorio
	}
	if l.NumeroMovil == "" {
		campos["numero_movil"] = mensajeObligatorio
	} else if len(l.NumeroMovil) < LargoMinimoMovil {
		campos["numero_movil"] = "El número móvil debe tener al menos 9 caracteres."
	}
	if len(campos) > 0 {
		return &validacion.ErrorValidacion{Campos: campos}
	}

	// Chequeo amistoso de unicidad. El índice único de la tabla es el
	// árbitro final ante dos creaciones concurrentes.
	var total int64
	if err := db.Model(&Lead{}).
		Where("numero_movil = ? AND id <> ?", l.NumeroMovil, excluirID).
		Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		return &validacion.ErrorConflicto{
			Campo:   "numero_movil",
			Mensaje: "El número móvil ya está registrado.",
		}
	}

	var subtipo catalogo.SubtipoContacto
	err := db.Preload("TipoContacto").First(&subtipo, l.SubtipoContactoID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return validacion.NuevoErrorValidacion("subtipo_contacto", "El subtipo de contacto no existe.")
	}
	if err != nil {
		return err
	}
	if subtipo.TipoContacto.NombreTipo == "No Contacto" &&
		subtipo.Descripcion == "Transferencia" &&
		l.TransferenciaID == nil {
		return validacion.NuevoErrorValidacion("transferencia",
			"El motivo de transferencia es obligatorio para este subtipo de contacto.")
	}

	return nil
}
