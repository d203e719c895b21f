package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/intelicom/api-crm/internal/auth"
	"github.com/stretchr/testify/assert"
)

func configurarAuth(t *testing.T) {
	t.Setenv("AUTH_SECRET", "secreto-de-pruebas")
	t.Setenv("AUTH_ISSUER", "api-crm")
	t.Setenv("AUTH_AUDIENCE", "api-crm-clientes")
}

func TestGenerarYValidarToken(t *testing.T) {
	configurarAuth(t)

	token, err := auth.GenerateAccessToken(7, true)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := auth.ParseAndValidate(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.True(t, claims.EsAdmin)
	assert.Equal(t, "api-crm", claims.Issuer)
}

func TestTokenAdulteradoRechazado(t *testing.T) {
	configurarAuth(t)

	token, err := auth.GenerateAccessToken(7, false)
	assert.NoError(t, err)

	_, err = auth.ParseAndValidate(token + "x")
	assert.Error(t, err)
}

func TestMiddlewareAutenticacion(t *testing.T) {
	configurarAuth(t)

	var usuarioID uint
	var autenticado bool
	siguiente := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		usuarioID, autenticado = auth.UsuarioDelContexto(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	protegido := auth.MiddlewareAutenticacion(siguiente)

	// sin header
	rec := httptest.NewRecorder()
	protegido.ServeHTTP(rec, httptest.NewRequest("GET", "/leads", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// token válido
	token, err := auth.GenerateAccessToken(42, false)
	assert.NoError(t, err)
	req := httptest.NewRequest("GET", "/leads", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	protegido.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, autenticado)
	assert.Equal(t, uint(42), usuarioID)
}
