package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/store-admin-api/internal/form"
)

func productSchema(t *testing.T) *form.Schema {
	t.Helper()
	all, err := form.Default()
	require.NoError(t, err)
	sc, err := all.Get("product")
	require.NoError(t, err)
	return sc
}

func TestParseValues(t *testing.T) {
	sc := productSchema(t)
	values, err := parseValues(sc, []string{
		"name=Camisa",
		"images=https://img/1.png,https://img/2.png",
		"price=59.90",
		"isFeatured=true",
	})
	require.NoError(t, err)
	assert.Equal(t, form.Values{
		"name":       "Camisa",
		"images":     []string{"https://img/1.png", "https://img/2.png"},
		"price":      "59.90",
		"isFeatured": true,
	}, values)

	_, err = parseValues(sc, []string{"sku=1"})
	assert.Error(t, err)
	_, err = parseValues(sc, []string{"isArchived=quizas"})
	assert.Error(t, err)
	_, err = parseValues(sc, []string{"name"})
	assert.Error(t, err)
}

func TestParseFilters(t *testing.T) {
	q, err := parseFilters([]string{"isFeatured=true", "colorId=k1"})
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"isFeatured": {"true"}, "colorId": {"k1"}}, q)
}

func TestProfileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "profile.toml")

	p, err := loadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, defaultAPI, p.API)

	p.Token, p.Store = "jwt-1", "store-1"
	require.NoError(t, saveProfile(path, p))

	got, err := loadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestPrintRecords(t *testing.T) {
	all, err := form.Default()
	require.NoError(t, err)
	sc, err := all.Get("size")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printRecords(&buf, sc, []map[string]any{{"id": "z1", "name": "Mediana", "value": "M"}}))
	out := buf.String()
	assert.Contains(t, out, "NOMBRE")
	assert.Contains(t, out, "z1")
	assert.Contains(t, out, "Mediana")
}

// stubClipboard sustituye el portapapeles del sistema durante el test.
func stubClipboard(t *testing.T, unsupported bool, write func(string) error) {
	t.Helper()
	oldWrite, oldUnsupported := clipboardWriteAll, clipboardUnsupported
	clipboardWriteAll, clipboardUnsupported = write, unsupported
	t.Cleanup(func() { clipboardWriteAll, clipboardUnsupported = oldWrite, oldUnsupported })
}

func TestTerminalCopy_WritesClipboard(t *testing.T) {
	var copied string
	stubClipboard(t, false, func(s string) error { copied = s; return nil })

	var buf bytes.Buffer
	require.NoError(t, terminal{out: &buf}.Copy("z1"))
	assert.Equal(t, "z1", copied)
	assert.Empty(t, buf.String())
}

func TestTerminalCopy_FallsBackToOutput(t *testing.T) {
	t.Run("escritura fallida", func(t *testing.T) {
		stubClipboard(t, false, func(string) error { return errors.New("xclip no encontrado") })
		var buf bytes.Buffer
		require.NoError(t, terminal{out: &buf}.Copy("z1"))
		assert.Contains(t, buf.String(), "z1")
	})

	t.Run("sin portapapeles", func(t *testing.T) {
		called := false
		stubClipboard(t, true, func(string) error { called = true; return nil })
		var buf bytes.Buffer
		require.NoError(t, terminal{out: &buf}.Copy("z1"))
		assert.False(t, called)
		assert.Contains(t, buf.String(), "z1")
	})
}

func TestCopyIDAction_UsesClipboard(t *testing.T) {
	var copied string
	stubClipboard(t, false, func(s string) error { copied = s; return nil })

	all, err := form.Default()
	require.NoError(t, err)
	sc, err := all.Get("color")
	require.NoError(t, err)

	var buf bytes.Buffer
	term := terminal{out: &buf}
	actions := form.CellActions{Schema: sc, StoreID: "s1", Notifier: term, Navigator: term, Clipboard: term}
	require.NoError(t, actions.CopyID("k1"))
	assert.Equal(t, "k1", copied)
	assert.Contains(t, buf.String(), "copiado al portapapeles")
}
