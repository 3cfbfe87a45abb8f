package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalLocale(t *testing.T) {
	cases := map[string]string{
		"":           "en",
		"en":         "en",
		"en-US":      "en",
		"az":         "az",
		"az-Latn-AZ": "az",
		"ru":         "ru",
		"ru-RU":      "ru",
		"de":         "en", // unsupported languages fall back
		"garbage!!":  "en",
	}
	for in, want := range cases {
		assert.Equal(t, want, CanonicalLocale(in), "locale %q", in)
	}
}

func TestSession_Defaults(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, s.Token())
	assert.Equal(t, "en", s.Locale())
}

func TestSession_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, s.SetToken("tok"))
	require.NoError(t, s.SetLocale("az"))

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tok", reloaded.Token())
	assert.Equal(t, "az", reloaded.Locale())
}

func TestSession_ClearKeepsLocale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, s.SetToken("tok"))
	require.NoError(t, s.SetLocale("ru"))

	require.NoError(t, s.Clear())
	assert.Empty(t, s.Token())
	assert.Equal(t, "ru", s.Locale())

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Token())
	assert.Equal(t, "ru", reloaded.Locale())
}
