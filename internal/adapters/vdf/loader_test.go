package vdf_test

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/protonrun/internal/adapters/vdf"
	"go.trai.ch/protonrun/internal/core/domain"
)

func TestLoader_Load(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/steam/steamapps", 0o750))
	require.NoError(t, afero.WriteFile(fsys, "/steam/steamapps/libraryfolders.vdf",
		[]byte("\"libraryfolders\"\n{\n\t\"0\"\n\t{\n\t\t\"path\"\t\t\"/steam\"\n\t}\n}\n"), 0o600))

	loader := vdf.NewLoader(fsys)

	doc, err := loader.Load("/steam/steamapps/libraryfolders.vdf")
	require.NoError(t, err)

	path, ok := doc.Lookup(domain.LibraryFoldersRootKey, "0", domain.LibraryPathKey)
	require.True(t, ok)
	assert.Equal(t, "/steam", path.Value())
}

func TestLoader_Load_NotFound(t *testing.T) {
	loader := vdf.NewLoader(afero.NewMemMapFs())

	doc, err := loader.Load("/steam/steamapps/libraryfolders.vdf")
	require.Error(t, err)
	assert.Nil(t, doc)
	assert.ErrorContains(t, err, domain.ErrDocumentNotFound.Error())
}

func TestLoader_Load_OsFs(t *testing.T) {
	loader := vdf.NewLoader(afero.NewOsFs())

	doc, err := loader.Load("testdata/appmanifest_252950.acf")
	require.NoError(t, err)

	name, ok := doc.Lookup("AppState", "name")
	require.True(t, ok)
	assert.Equal(t, "Rocket League", name.Value())
}

func TestLoader_Load_LongLine(t *testing.T) {
	fsys := afero.NewMemMapFs()
	content := "\"libraryfolders\"\n{\n\t\"junk\"\t\t\"" + strings.Repeat("j", 2<<20) + "\"\n" +
		"\t\"0\"\n\t{\n\t\t\"path\"\t\t\"/steam\"\n\t}\n}\n"
	require.NoError(t, afero.WriteFile(fsys, "/steam/steamapps/libraryfolders.vdf", []byte(content), 0o600))

	doc, err := vdf.NewLoader(fsys).Load("/steam/steamapps/libraryfolders.vdf")
	require.NoError(t, err)

	path, ok := doc.Lookup(domain.LibraryFoldersRootKey, "0", domain.LibraryPathKey)
	require.True(t, ok)
	assert.Equal(t, "/steam", path.Value())
}
