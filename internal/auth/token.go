package auth

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims del token de acceso (incluye el flag de administrador).
type Claims struct {
	UserID  uint `json:"userId"`
	EsAdmin bool `json:"esAdmin"`
	jwt.RegisteredClaims
}

// Tiempo de vida del access token
const AccessTTL = 60 * time.Minute

var (
	confOnce sync.Once
	confErr  error

	secret   []byte
	issuer   string
	audience string
)

func mustInitConf() error {
	confOnce.Do(func() {
		secret = []byte(os.Getenv("AUTH_SECRET"))
		issuer = os.Getenv("AUTH_ISSUER")
		audience = os.Getenv("AUTH_AUDIENCE")
		if len(secret) == 0 || issuer == "" || audience == "" {
			confErr = errors.New("faltan envs: AUTH_SECRET/AUTH_ISSUER/AUTH_AUDIENCE")
		}
	})
	return confErr
}

// GenerateAccessToken genera un JWT HS256 con iss, aud, iat, nbf y jti.
func GenerateAccessToken(userID uint, esAdmin bool) (string, error) {
	if err := mustInitConf(); err != nil {
		return "", fmt.Errorf("auth init: %w", err)
	}

	now := time.Now()
	jti := fmt.Sprintf("%d-%d", userID, now.UnixNano())

	claims := &Claims{
		UserID:  userID,
		EsAdmin: esAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Audience:  []string{audience},
			Subject:   fmt.Sprint(userID),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-1 * time.Minute)),
			ID:        jti,
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(secret)
}

func audienceContains(a jwt.ClaimStrings, want string) bool {
	for _, v := range a {
		if v == want {
			return true
		}
	}
	return false
}

// ParseAndValidate valida firma, iss, aud y exp.
func ParseAndValidate(tokenStr string) (*Claims, error) {
	if err := mustInitConf(); err != nil {
		return nil, err
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	tok, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, errors.New("token inválido")
	}

	c, ok := tok.Claims.(*Claims)
	if !ok {
		return nil, errors.New("claims inválidas")
	}

	if c.Issuer != issuer {
		return nil, errors.New("issuer inválido")
	}
	if !audienceContains(c.Audience, audience) {
		return nil, errors.New("audience inválida")
	}
	if c.ExpiresAt == nil || time.Now().After(c.ExpiresAt.Time) {
		return nil, errors.New("token expirado")
	}

	return c, nil
}
