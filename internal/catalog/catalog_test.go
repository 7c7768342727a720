package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benshabbat/receipt-scanner/internal/catalog"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cat := catalog.Default()
	require.NotEmpty(t, cat.Stores)
	require.NotEmpty(t, cat.Categories)

	for _, s := range cat.Stores {
		require.NotEmpty(t, s.Name)
		require.NotEmpty(t, s.Aliases)
	}
	for _, c := range cat.Categories {
		require.NotEmpty(t, c.Category)
		require.NotEmpty(t, c.Keywords)
	}
}

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := writeCatalogFile(t, `{
		"stores": [
			{"name": "מעדניית הבית", "aliases": ["מעדניית הבית", "maadaniya"]}
		]
	}`)

	cat, err := catalog.LoadFile(path)
	require.NoError(t, err)

	// The stores section is replaced wholesale, the categories section
	// keeps the built-in table.
	require.Len(t, cat.Stores, 1)
	require.Equal(t, "מעדניית הבית", cat.Stores[0].Name)
	require.Equal(t, catalog.Default().Categories, cat.Categories)
}

func TestLoadFile_SchemaViolations(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		content string
	}{
		{name: "store without aliases", content: `{"stores": [{"name": "חנות"}]}`},
		{name: "empty alias", content: `{"stores": [{"name": "חנות", "aliases": [""]}]}`},
		{name: "unknown top-level key", content: `{"shops": []}`},
		{name: "category without keywords", content: `{"categories": [{"category": "אחר"}]}`},
		{name: "not json", content: `stores: []`},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := catalog.LoadFile(writeCatalogFile(t, tc.content))
			require.Error(t, err)
		})
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := catalog.LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
