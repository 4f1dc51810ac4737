package integration

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"pfgen/internal/address"
	"pfgen/internal/assembler"
	"pfgen/internal/export"
	"pfgen/internal/logging"
	"pfgen/internal/models"
	"pfgen/internal/roster"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rosterCSV = "Numéro de compte,Raison sociale,Adresse,ManagingBranch\n" +
	"123,Acme SARL,10 Rue de la Paix 75002 Paris,42\n" +
	"1234567,Bravo SA,adresse illisible,42\n" +
	"99,Charlie,5 Rue Haute 59000 Lille,7\n"

func runParams() models.GenerationParameters {
	return models.GenerationParameters{
		CompanyID:                "acme",
		PunchoutUserID:           "acme_punchout",
		Domain:                   models.DomainNetworkID,
		Identity:                 "AN0100000123",
		ViewMasterCatalog:        models.FlagTrue,
		PersonalCatalogueEnabled: true,
		PersonalCatalogueName:    "CATALOGUE",
		IntegrationType:          models.IntegrationCXML,
	}
}

func generate(t *testing.T, dir string) []string {
	t.Helper()
	logger := &logging.MockLogger{}

	rosterPath := filepath.Join(dir, "roster.csv")
	require.NoError(t, os.WriteFile(rosterPath, []byte(rosterCSV), 0600))

	rows, err := roster.New(',', logger).Read(rosterPath)
	require.NoError(t, err)

	params := runParams()
	tables, err := assembler.New(params, address.New(nil, ""), logger).Assemble(rows)
	require.NoError(t, err)

	ts := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	paths, err := export.New(',', logger).WriteTables(tables, params.CompanyID, dir, "csv", ts)
	require.NoError(t, err)
	return paths
}

func TestGeneration_EndToEnd(t *testing.T) {
	dir := t.TempDir()

	paths := generate(t, dir)
	require.Len(t, paths, 6)

	pf1, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t,
		"uid,name,locName,CXmIAssignedConfiguration,pcCompoundProfile,ViewMasterCatalog\n"+
			"0000123,Acme SARL,Acme SARL,frx-variant-acme-configuration-set,PC_CATALOGUE,True\n"+
			"1234567,Bravo SA,Bravo SA,frx-variant-acme-configuration-set,PC_CATALOGUE,True\n"+
			"0000099,Charlie,Charlie,frx-variant-acme-configuration-set,PC_CATALOGUE,True\n",
		string(pf1))

	pf2, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Contains(t, string(pf2), "0000123,10,Rue de la Paix,75002,Paris,FR,\n")
	assert.Contains(t, string(pf2), "1234567,,,,,FR,\n")

	pf6, err := os.ReadFile(paths[5])
	require.NoError(t, err)
	assert.Equal(t,
		"number,domain,identity\n"+
			"0000123,NetworkID,AN0100000123\n"+
			"1234567,NetworkID,AN0100000123\n"+
			"0000099,NetworkID,AN0100000123\n",
		string(pf6))
}

// Row i of every account-keyed table must carry the same account number,
// so a downstream import can correlate the artifacts positionally.
func TestGeneration_PositionalCorrelation(t *testing.T) {
	dir := t.TempDir()
	paths := generate(t, dir)

	firstColumn := func(path string) []string {
		file, err := os.Open(path)
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		records, err := csv.NewReader(file).ReadAll()
		require.NoError(t, err)
		var col []string
		for _, record := range records[1:] {
			col = append(col, record[0])
		}
		return col
	}

	want := []string{"0000123", "1234567", "0000099"}
	assert.Equal(t, want, firstColumn(paths[0]), "PF1 uid")
	assert.Equal(t, want, firstColumn(paths[1]), "PF2 B2B Unit")
	assert.Equal(t, want, firstColumn(paths[2]), "PF3 B2BUnitID")
	assert.Equal(t, want, firstColumn(paths[4]), "PF5 B2BUnitID")
	assert.Equal(t, want, firstColumn(paths[5]), "PF6 number")

	// PF4 is branch-keyed, duplicates preserved.
	assert.Equal(t, []string{"0042", "0042", "0007"}, firstColumn(paths[3]))
}

func TestGeneration_Idempotent(t *testing.T) {
	first := generate(t, t.TempDir())
	second := generate(t, t.TempDir())

	for i := range first {
		a, err := os.ReadFile(first[i])
		require.NoError(t, err)
		b, err := os.ReadFile(second[i])
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b), "table %s", filepath.Base(first[i]))
	}
}
