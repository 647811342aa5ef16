// Package password deriva y verifica contraseñas con PBKDF2-HMAC-SHA256.
//
// Cada cuenta guarda su propio salt aleatorio y el digest resultante, ambos en hexadecimal.
package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	Iterations = 150_000
	SaltLength = 16
	HashLength = 32

	// MinLength longitud mínima aceptada en registro y cambio de contraseña.
	MinLength = 6
)

// Hash genera un salt aleatorio nuevo y deriva el digest de la contraseña.
func Hash(password string) (salt, hash []byte, err error) {
	salt = make([]byte, SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("password: generar salt: %w", err)
	}
	return salt, derive(password, salt), nil
}

// Verify recalcula el digest con el salt almacenado y compara en tiempo constante.
func Verify(password string, salt, hash []byte) bool {
	if len(salt) == 0 || len(hash) != HashLength {
		return false
	}
	return subtle.ConstantTimeCompare(derive(password, salt), hash) == 1
}

// HashHex igual que Hash pero devuelve salt y digest codificados para persistir.
func HashHex(password string) (saltHex, hashHex string, err error) {
	salt, hash, err := Hash(password)
	if err != nil {
		return "", "", err
	}
	return hex.EncodeToString(salt), hex.EncodeToString(hash), nil
}

// VerifyHex verifica contra valores persistidos en hexadecimal. Un valor mal codificado no verifica.
func VerifyHex(password, saltHex, hashHex string) bool {
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	hash, err := hex.DecodeString(hashHex)
	if err != nil {
		return false
	}
	return Verify(password, salt, hash)
}

// dummy se usa cuando el usuario no existe, para que el login cueste lo mismo
// que con un usuario real.
var dummySalt, dummyHash = func() ([]byte, []byte) {
	salt := make([]byte, SaltLength)
	return salt, derive("dummy_password_for_timing", salt)
}()

// BurnDummy ejecuta una derivación completa contra valores ficticios. Siempre devuelve false.
func BurnDummy(password string) bool {
	_ = Verify(password, dummySalt, dummyHash)
	return false
}

func derive(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, Iterations, HashLength, sha256.New)
}
