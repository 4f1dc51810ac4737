package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"pfgen/internal/logging"
	"pfgen/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testTables() []models.Table {
	return []models.Table{
		{
			Name:    models.TablePF5,
			Headers: models.PF5Headers,
			Rows: [][]string{
				{"0000123", "acme_punchout"},
				{"0000456", "acme_punchout"},
			},
		},
		{
			Name:    models.TablePF6,
			Headers: models.PF6Headers,
			Rows:    [][]string{{"0000123", "NetworkID", "AN01"}},
		},
	}
}

func fixedTime() time.Time {
	return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
}

func TestWriteTables_CSVNamingAndContent(t *testing.T) {
	dir := t.TempDir()
	w := New(',', &logging.MockLogger{})

	paths, err := w.WriteTables(testTables(), "acme", dir, "csv", fixedTime())
	require.NoError(t, err)

	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "PF5_acme_20250314_092653.csv"), paths[0])
	assert.Equal(t, filepath.Join(dir, "PF6_acme_20250314_092653.csv"), paths[1])

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t,
		"B2BUnitID,punchoutUserID\n0000123,acme_punchout\n0000456,acme_punchout\n",
		string(data))
}

func TestWriteTables_XLSXRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w := New(',', &logging.MockLogger{})

	paths, err := w.WriteTables(testTables(), "acme", dir, "xlsx", fixedTime())
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, "PF5_acme_20250314_092653.xlsx", filepath.Base(paths[0]))

	f, err := excelize.OpenFile(paths[0])
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, models.PF5Headers, rows[0])
	assert.Equal(t, []string{"0000123", "acme_punchout"}, rows[1])
}

func TestWriteTables_EmptyTableStillWritesHeaders(t *testing.T) {
	dir := t.TempDir()
	w := New(',', &logging.MockLogger{})
	tables := []models.Table{{Name: models.TablePF4, Headers: models.PF4Headers}}

	paths, err := w.WriteTables(tables, "acme", dir, "csv", fixedTime())
	require.NoError(t, err)

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, "aliasName,branch,punchoutUserID,sealed\n", string(data))
}

func TestWriteTables_CreatesOutputDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "run1")
	w := New(',', &logging.MockLogger{})

	_, err := w.WriteTables(testTables(), "acme", dir, "csv", fixedTime())
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestWriteTables_UnsupportedFormat(t *testing.T) {
	w := New(',', &logging.MockLogger{})

	_, err := w.WriteTables(testTables(), "acme", t.TempDir(), "pdf", fixedTime())
	assert.Error(t, err)
}

func TestWriteTables_SemicolonDelimiter(t *testing.T) {
	dir := t.TempDir()
	w := New(';', &logging.MockLogger{})

	paths, err := w.WriteTables(testTables()[:1], "acme", dir, "csv", fixedTime())
	require.NoError(t, err)

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "B2BUnitID;punchoutUserID")
}

func TestWriteTemplate_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dfrecu_template.csv")
	w := New(',', &logging.MockLogger{})

	require.NoError(t, w.WriteTemplate(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"Numéro de compte,Raison sociale,Adresse,ManagingBranch\n,,,\n",
		string(data))
}

func TestWriteTemplate_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dfrecu_template.xlsx")
	w := New(',', &logging.MockLogger{})

	require.NoError(t, w.WriteTemplate(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, models.RequiredColumns, rows[0])
}
