package password_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmonitor/pkg/password"
)

func TestHash_LongitudesFijas(t *testing.T) {
	salt, hash, err := password.Hash("secreto1")
	require.NoError(t, err)

	assert.Len(t, salt, password.SaltLength)
	assert.Len(t, hash, password.HashLength)
}

func TestVerify_MismaContraseña(t *testing.T) {
	salt, hash, err := password.Hash("secreto1")
	require.NoError(t, err)

	assert.True(t, password.Verify("secreto1", salt, hash))
}

func TestVerify_ContraseñaDistinta(t *testing.T) {
	salt, hash, err := password.Hash("secreto1")
	require.NoError(t, err)

	assert.False(t, password.Verify("secreto2", salt, hash))
	assert.False(t, password.Verify("", salt, hash))
	assert.False(t, password.Verify("Secreto1", salt, hash), "la comparación distingue mayúsculas")
}

// Dos derivaciones de la misma contraseña usan salts distintos y producen digests distintos.
func TestHash_SaltAleatorio(t *testing.T) {
	salt1, hash1, err := password.Hash("repetida")
	require.NoError(t, err)
	salt2, hash2, err := password.Hash("repetida")
	require.NoError(t, err)

	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, hash1, hash2)
}

func TestHex_RoundTrip(t *testing.T) {
	saltHex, hashHex, err := password.HashHex("Admin@123")
	require.NoError(t, err)

	assert.Len(t, saltHex, password.SaltLength*2)
	assert.Len(t, hashHex, password.HashLength*2)
	assert.True(t, password.VerifyHex("Admin@123", saltHex, hashHex))
	assert.False(t, password.VerifyHex("admin@123", saltHex, hashHex))
}

func TestVerifyHex_ValoresCorruptos(t *testing.T) {
	saltHex, hashHex, err := password.HashHex("x")
	require.NoError(t, err)

	assert.False(t, password.VerifyHex("x", "zz", hashHex))
	assert.False(t, password.VerifyHex("x", saltHex, "no-hex"))
	assert.False(t, password.VerifyHex("x", saltHex, hex.EncodeToString([]byte("corto"))))
}

func TestBurnDummy_SiempreFalso(t *testing.T) {
	assert.False(t, password.BurnDummy("dummy_password_for_timing"))
}
