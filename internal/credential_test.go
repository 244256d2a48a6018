package internal

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectKey(t *testing.T) {
	exp := time.Date(2035, 10, 29, 17, 0, 0, 0, time.UTC)
	key := signKey(t, jwt.MapClaims{"iss": "supabase", "ref": "abc", "role": "anon", "exp": exp.Unix()})

	info, ok := inspectKey(key)
	require.True(t, ok)
	assert.Equal(t, "anon", info.Role)
	assert.Equal(t, "abc", info.Ref)
	assert.True(t, exp.Equal(info.ExpiresAt))
}

func TestInspectKeyNotJWT(t *testing.T) {
	_, ok := inspectKey("sb_publishable_123")
	assert.False(t, ok)
}

func TestKeyHintsExpired(t *testing.T) {
	exp := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := Config{URL: "https://abc.supabase.co", Key: signKey(t, jwt.MapClaims{"ref": "abc", "role": "service_role", "exp": exp.Unix()})}

	hints := keyHints(cfg, time.Now())
	assert.Equal(t, []string{"The key expired at 2020-01-01T00:00:00Z."}, hints)
}

func TestKeyHintsWrongProject(t *testing.T) {
	cfg := Config{URL: "https://xyz.supabase.co", Key: signKey(t, jwt.MapClaims{"ref": "abc", "role": "anon"})}

	hints := keyHints(cfg, time.Now())
	require.Len(t, hints, 2)
	assert.Equal(t, "The key was issued for project 'abc' but the URL points at 'xyz.supabase.co'.", hints[0])
	assert.Contains(t, hints[1], "'anon' role")
}

func TestKeyHintsSelfHosted(t *testing.T) {
	cfg := Config{URL: "http://localhost:54321", Key: signKey(t, jwt.MapClaims{"ref": "abc", "role": "service_role"})}

	assert.Empty(t, keyHints(cfg, time.Now()))
}

func TestKeyHintsNotJWT(t *testing.T) {
	assert.Nil(t, keyHints(Config{URL: "https://abc.supabase.co", Key: "plain"}, time.Now()))
}

// helpers

func signKey(t *testing.T, claims jwt.MapClaims) string {
	key, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("not-the-real-secret"))
	require.NoError(t, err)
	return key
}
