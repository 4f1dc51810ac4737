package models

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Domain enumerates the supplier identification schemes accepted for the
// credential table.
type Domain string

const (
	DomainNetworkID Domain = "NetworkID"
	DomainDUNS      Domain = "DUNS"
)

// ParseDomain converts a user-supplied string into a Domain.
func ParseDomain(s string) (Domain, error) {
	switch Domain(s) {
	case DomainNetworkID, DomainDUNS:
		return Domain(s), nil
	default:
		return "", fmt.Errorf("invalid domain %q: must be %q or %q", s, DomainNetworkID, DomainDUNS)
	}
}

// IntegrationType enumerates the punchout integration flavours. It drives
// the PF1 configuration column name and whether PF6 is produced.
type IntegrationType string

const (
	IntegrationCXML IntegrationType = "cXML"
	IntegrationOCI  IntegrationType = "OCI"
)

// ParseIntegrationType converts a user-supplied string into an
// IntegrationType. Matching is case-insensitive to be forgiving on the
// command line; the canonical value is stored.
func ParseIntegrationType(s string) (IntegrationType, error) {
	switch strings.ToLower(s) {
	case strings.ToLower(string(IntegrationCXML)):
		return IntegrationCXML, nil
	case strings.ToLower(string(IntegrationOCI)):
		return IntegrationOCI, nil
	default:
		return "", fmt.Errorf("invalid integration type %q: must be %q or %q", s, IntegrationCXML, IntegrationOCI)
	}
}

// The ViewMasterCatalog column carries a literal text flag, not a boolean.
// The downstream import matches these exact strings.
const (
	FlagTrue  = "True"
	FlagFalse = "False"
)

// GenerationParameters is the immutable parameter snapshot captured once
// before a run. No field changes per row.
type GenerationParameters struct {
	CompanyID                string          `yaml:"company_id"`
	PunchoutUserID           string          `yaml:"punchout_user_id"`
	Domain                   Domain          `yaml:"domain"`
	Identity                 string          `yaml:"identity"`
	ViewMasterCatalog        string          `yaml:"view_master_catalog"`
	PersonalCatalogueEnabled bool            `yaml:"personal_catalogue_enabled"`
	PersonalCatalogueName    string          `yaml:"personal_catalogue_name"`
	IntegrationType          IntegrationType `yaml:"integration_type"`
	UseAddressForLocName     bool            `yaml:"use_address_for_locname"`
}

// Validate checks the whole parameter surface at once and reports every
// problem, not just the first.
func (p GenerationParameters) Validate() error {
	var problems []string
	if strings.TrimSpace(p.CompanyID) == "" {
		problems = append(problems, "company_id must not be empty")
	}
	if strings.TrimSpace(p.PunchoutUserID) == "" {
		problems = append(problems, "punchout_user_id must not be empty")
	}
	if strings.TrimSpace(p.Identity) == "" {
		problems = append(problems, "identity must not be empty")
	}
	if p.Domain != DomainNetworkID && p.Domain != DomainDUNS {
		problems = append(problems, fmt.Sprintf("domain must be %q or %q", DomainNetworkID, DomainDUNS))
	}
	if p.IntegrationType != IntegrationCXML && p.IntegrationType != IntegrationOCI {
		problems = append(problems, fmt.Sprintf("integration_type must be %q or %q", IntegrationCXML, IntegrationOCI))
	}
	if p.ViewMasterCatalog != FlagTrue && p.ViewMasterCatalog != FlagFalse {
		problems = append(problems, fmt.Sprintf("view_master_catalog must be %q or %q", FlagTrue, FlagFalse))
	}
	if p.PersonalCatalogueEnabled && strings.TrimSpace(p.PersonalCatalogueName) == "" {
		problems = append(problems, "personal_catalogue_name is required when the personal catalogue is enabled")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid generation parameters: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ConfigurationSetValue builds the assigned-configuration value written
// into PF1 for every account.
func (p GenerationParameters) ConfigurationSetValue() string {
	return fmt.Sprintf("frx-variant-%s-configuration-set", p.CompanyID)
}

// PCCompoundProfile returns the compound-profile value for PF1: the PC_
// prefix plus the catalogue name when the personal catalogue is enabled,
// otherwise the empty string.
func (p GenerationParameters) PCCompoundProfile() string {
	if p.PersonalCatalogueEnabled && p.PersonalCatalogueName != "" {
		return "PC_" + p.PersonalCatalogueName
	}
	return ""
}

// ConfigColumnName returns the PF1 configuration column header for the
// selected integration type. Both spellings, including the capital I in
// CXmI, are the literal headers the provisioning import expects.
func (p GenerationParameters) ConfigColumnName() string {
	if p.IntegrationType == IntegrationOCI {
		return ConfigColumnOCI
	}
	return ConfigColumnCXML
}

// LoadParametersFile reads GenerationParameters from a YAML file.
func LoadParametersFile(path string) (GenerationParameters, error) {
	var params GenerationParameters
	data, err := os.ReadFile(path)
	if err != nil {
		return params, fmt.Errorf("error reading parameters file: %w", err)
	}
	if err := yaml.Unmarshal(data, &params); err != nil {
		return params, fmt.Errorf("error parsing parameters file %s: %w", path, err)
	}
	return params, nil
}
