package jsonstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/petitions/internal/feed"
	"github.com/idilsaglam/petitions/internal/model"
	"github.com/idilsaglam/petitions/internal/store/jsonstore"
)

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "petitions.json")
	in := []model.Petition{
		{Title: "Tax Reform", Body: "Lower taxes", SignatureCount: 500},
		{Title: "Education", Body: "School funding", SignatureCount: 200},
	}

	require.NoError(t, jsonstore.Save(path, in))
	out, err := jsonstore.Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"results"`)
	assert.Contains(t, string(raw), `"signatureCount": 500`)
}

func TestLoad_Missing(t *testing.T) {
	_, err := jsonstore.Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, feed.IsLoadError(err))
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"results": [{"title": 1}]}`), 0o600))

	petitions, err := jsonstore.Load(path)
	assert.Nil(t, petitions)
	var pe *feed.ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestSave_BadPath(t *testing.T) {
	err := jsonstore.Save(filepath.Join(t.TempDir(), "missing-dir", "x.json"), nil)
	assert.ErrorContains(t, err, "write file")
}
