// Package expander turns one roster row into its correlated records across
// the destination tables. All validation happens upstream; by the time a
// row reaches the expander it always yields exactly one record per
// applicable table.
package expander

import (
	"pfgen/internal/address"
	"pfgen/internal/models"
)

// Expander derives per-table records from roster rows using a fixed
// parameter snapshot and a pre-selected address parsing strategy.
type Expander struct {
	params  models.GenerationParameters
	address *address.Parser
}

// New builds an Expander. A nil parser gets the regex fallback with the
// default country.
func New(params models.GenerationParameters, parser *address.Parser) *Expander {
	if parser == nil {
		parser = address.New(nil, "")
	}
	return &Expander{params: params, address: parser}
}

// Expand produces the records of one source row, keyed by table name.
// PF6 is present only for cXML integrations. Field order in each record
// matches the table's header order exactly.
func (e *Expander) Expand(row models.SourceRow) map[string][]string {
	p := e.params

	locName := row.CompanyName
	if p.UseAddressForLocName {
		locName = row.Address
	}

	parsed := e.address.Parse(row.Address)

	records := map[string][]string{
		models.TablePF1: {
			row.AccountNumber,
			row.CompanyName,
			locName,
			p.ConfigurationSetValue(),
			p.PCCompoundProfile(),
			p.ViewMasterCatalog,
		},
		models.TablePF2: {
			row.AccountNumber,
			parsed.HouseNumber,
			parsed.Street,
			parsed.PostalCode,
			parsed.City,
			parsed.Country,
			"", // phone column is always emitted empty
		},
		models.TablePF3: {
			row.AccountNumber,
			models.ItemTypeBranchAssociation,
			row.ManagingBranch,
			p.PunchoutUserID,
			models.SealedFalse,
		},
		models.TablePF4: {
			row.ManagingBranch,
			row.ManagingBranch,
			p.PunchoutUserID,
			models.SealedFalse,
		},
		models.TablePF5: {
			row.AccountNumber,
			p.PunchoutUserID,
		},
	}

	if p.IntegrationType == models.IntegrationCXML {
		records[models.TablePF6] = []string{
			row.AccountNumber,
			string(p.Domain),
			p.Identity,
		}
	}

	return records
}
