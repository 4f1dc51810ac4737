// Package assembler runs the full roster-to-tables pass: header check,
// identifier sanitation, per-row expansion and ordered accumulation into
// the final table set.
package assembler

import (
	"errors"

	"pfgen/internal/address"
	"pfgen/internal/expander"
	"pfgen/internal/logging"
	"pfgen/internal/models"
	"pfgen/internal/rostererror"
	"pfgen/internal/sanitize"
)

// Assembler produces the five or six output tables for one run. It is
// parameterized once; nothing mutates between rows.
type Assembler struct {
	params models.GenerationParameters
	expand *expander.Expander
	log    logging.Logger
}

// New builds an Assembler. A nil parser selects the regex address
// fallback; a nil logger gets a default one.
func New(params models.GenerationParameters, parser *address.Parser, logger logging.Logger) *Assembler {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Assembler{
		params: params,
		expand: expander.New(params, parser),
		log:    logger,
	}
}

// Assemble validates the roster and builds the output tables. Table row
// order mirrors roster row order; no row is skipped or deduplicated. Any
// validation failure aborts the run before a single table is produced.
func (a *Assembler) Assemble(roster models.Roster) ([]models.Table, error) {
	if err := CheckColumns(roster.Headers); err != nil {
		return nil, err
	}

	rows, err := SanitizeRows(roster.Rows)
	if err != nil {
		return nil, err
	}

	tables := a.emptyTables()
	index := make(map[string]int, len(tables))
	for i, t := range tables {
		index[t.Name] = i
	}

	for _, row := range rows {
		for name, record := range a.expand.Expand(row) {
			i := index[name]
			tables[i].Rows = append(tables[i].Rows, record)
		}
	}

	a.log.WithField("rows", len(rows)).
		WithField("tables", len(tables)).
		Info("Assembled provisioning tables")
	return tables, nil
}

// ValidateRoster runs only the header and identifier checks, without
// producing any table. Used by the roster check command.
func ValidateRoster(roster models.Roster) error {
	if err := CheckColumns(roster.Headers); err != nil {
		return err
	}
	_, err := SanitizeRows(roster.Rows)
	return err
}

// CheckColumns verifies that every required roster header is present and
// names all the missing ones at once.
func CheckColumns(headers []string) error {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}
	var missing []string
	for _, required := range models.RequiredColumns {
		if !present[required] {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return &rostererror.MissingColumnsError{Columns: missing}
	}
	return nil
}

// SanitizeRows pads both identifier columns and collects violations for
// each independently. When either column has a bad value the whole run is
// rejected, and both reports are returned together.
func SanitizeRows(rows []models.SourceRow) ([]models.SourceRow, error) {
	accounts := make([]string, len(rows))
	branches := make([]string, len(rows))
	for i, row := range rows {
		accounts[i] = row.AccountNumber
		branches[i] = row.ManagingBranch
	}

	var accountErr, branchErr error
	if v := sanitize.Violations(accounts, models.AccountNumberWidth); len(v) > 0 {
		accountErr = &rostererror.FieldValidationError{
			Field:      models.ColumnAccountNumber,
			Width:      models.AccountNumberWidth,
			Violations: v,
		}
	}
	if v := sanitize.Violations(branches, models.ManagingBranchWidth); len(v) > 0 {
		branchErr = &rostererror.FieldValidationError{
			Field:      models.ColumnManagingBranch,
			Width:      models.ManagingBranchWidth,
			Violations: v,
		}
	}
	if accountErr != nil || branchErr != nil {
		return nil, errors.Join(accountErr, branchErr)
	}

	paddedAccounts, _ := sanitize.Sanitize(accounts, models.AccountNumberWidth)
	paddedBranches, _ := sanitize.Sanitize(branches, models.ManagingBranchWidth)
	sanitized := make([]models.SourceRow, len(rows))
	for i, row := range rows {
		row.AccountNumber = paddedAccounts[i]
		row.ManagingBranch = paddedBranches[i]
		sanitized[i] = row
	}
	return sanitized, nil
}

func (a *Assembler) emptyTables() []models.Table {
	tables := []models.Table{
		{Name: models.TablePF1, Headers: models.PF1Headers(a.params.IntegrationType)},
		{Name: models.TablePF2, Headers: models.PF2Headers},
		{Name: models.TablePF3, Headers: models.PF3Headers},
		{Name: models.TablePF4, Headers: models.PF4Headers},
		{Name: models.TablePF5, Headers: models.PF5Headers},
	}
	if a.params.IntegrationType == models.IntegrationCXML {
		tables = append(tables, models.Table{Name: models.TablePF6, Headers: models.PF6Headers})
	}
	return tables
}
