package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() GenerationParameters {
	return GenerationParameters{
		CompanyID:         "acme",
		PunchoutUserID:    "acme_punchout",
		Domain:            DomainNetworkID,
		Identity:          "AN0100000123",
		ViewMasterCatalog: FlagTrue,
		IntegrationType:   IntegrationCXML,
	}
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, validParams().Validate())
}

func TestValidate_ReportsEveryProblemAtOnce(t *testing.T) {
	p := GenerationParameters{ViewMasterCatalog: "yes"}

	err := p.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "company_id")
	assert.Contains(t, msg, "punchout_user_id")
	assert.Contains(t, msg, "identity")
	assert.Contains(t, msg, "domain")
	assert.Contains(t, msg, "integration_type")
	assert.Contains(t, msg, "view_master_catalog")
}

func TestValidate_CatalogueNameRequiredOnlyWhenEnabled(t *testing.T) {
	p := validParams()
	p.PersonalCatalogueEnabled = true
	require.Error(t, p.Validate())

	p.PersonalCatalogueName = "CATALOGUE"
	assert.NoError(t, p.Validate())

	p.PersonalCatalogueEnabled = false
	p.PersonalCatalogueName = ""
	assert.NoError(t, p.Validate())
}

func TestPCCompoundProfile(t *testing.T) {
	p := validParams()
	assert.Equal(t, "", p.PCCompoundProfile())

	p.PersonalCatalogueEnabled = true
	p.PersonalCatalogueName = "CATALOGUE"
	assert.Equal(t, "PC_CATALOGUE", p.PCCompoundProfile())

	p.PersonalCatalogueEnabled = false
	assert.Equal(t, "", p.PCCompoundProfile(), "name alone must not produce a profile")
}

func TestConfigurationSetValue(t *testing.T) {
	assert.Equal(t, "frx-variant-acme-configuration-set", validParams().ConfigurationSetValue())
}

func TestConfigColumnName(t *testing.T) {
	p := validParams()
	assert.Equal(t, ConfigColumnCXML, p.ConfigColumnName())

	p.IntegrationType = IntegrationOCI
	assert.Equal(t, ConfigColumnOCI, p.ConfigColumnName())
}

func TestParseDomain(t *testing.T) {
	d, err := ParseDomain("NetworkID")
	require.NoError(t, err)
	assert.Equal(t, DomainNetworkID, d)

	d, err = ParseDomain("DUNS")
	require.NoError(t, err)
	assert.Equal(t, DomainDUNS, d)

	_, err = ParseDomain("duns")
	assert.Error(t, err, "domain values are case sensitive")

	_, err = ParseDomain("")
	assert.Error(t, err)
}

func TestParseIntegrationType(t *testing.T) {
	it, err := ParseIntegrationType("cxml")
	require.NoError(t, err)
	assert.Equal(t, IntegrationCXML, it)

	it, err = ParseIntegrationType("OCI")
	require.NoError(t, err)
	assert.Equal(t, IntegrationOCI, it)

	_, err = ParseIntegrationType("sap")
	assert.Error(t, err)
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, []string{"PF1", "PF2", "PF3", "PF4", "PF5", "PF6"}, TableNames(IntegrationCXML))
	assert.Equal(t, []string{"PF1", "PF2", "PF3", "PF4", "PF5"}, TableNames(IntegrationOCI))
}

func TestPF1Headers(t *testing.T) {
	cxml := PF1Headers(IntegrationCXML)
	assert.Equal(t, "CXmIAssignedConfiguration", cxml[3])

	oci := PF1Headers(IntegrationOCI)
	assert.Equal(t, "OCIAssignedConfiguration", oci[3])
	assert.Equal(t, []string{"uid", "name", "locName"}, oci[:3])
}

func TestLoadParametersFile(t *testing.T) {
	yaml := `company_id: acme
punchout_user_id: acme_punchout
domain: DUNS
identity: "123456789"
view_master_catalog: "False"
personal_catalogue_enabled: true
personal_catalogue_name: CATALOGUE
integration_type: OCI
use_address_for_locname: true
`
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0600))

	params, err := LoadParametersFile(path)
	require.NoError(t, err)

	assert.Equal(t, "acme", params.CompanyID)
	assert.Equal(t, DomainDUNS, params.Domain)
	assert.Equal(t, FlagFalse, params.ViewMasterCatalog)
	assert.True(t, params.PersonalCatalogueEnabled)
	assert.Equal(t, IntegrationOCI, params.IntegrationType)
	assert.True(t, params.UseAddressForLocName)
}

func TestLoadParametersFile_Missing(t *testing.T) {
	_, err := LoadParametersFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
