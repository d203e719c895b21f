package usuario

import "golang.org/x/crypto/bcrypt"

// hashPassword genera el hash bcrypt que se persiste en la columna password.
func hashPassword(plano string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plano), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// verificarPassword compara el hash almacenado con la contraseña en claro.
func verificarPassword(hash, plano string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plano)) == nil
}
