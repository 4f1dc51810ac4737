// Package models defines the data structures shared by the roster reader,
// the table generation engine and the export layer.
package models

// Required roster column headers. The match is exact, including accents,
// because the downstream template and the provisioning import both use
// these literal strings.
const (
	ColumnAccountNumber  = "Numéro de compte"
	ColumnCompanyName    = "Raison sociale"
	ColumnAddress        = "Adresse"
	ColumnManagingBranch = "ManagingBranch"
)

// RequiredColumns lists the roster headers every input must carry,
// in template order.
var RequiredColumns = []string{
	ColumnAccountNumber,
	ColumnCompanyName,
	ColumnAddress,
	ColumnManagingBranch,
}

// Fixed widths of the two numeric identifier columns.
const (
	AccountNumberWidth  = 7
	ManagingBranchWidth = 4
)

// SourceRow is one record of the uploaded account roster. Fields are kept
// exactly as read; validation happens later, in the sanitizer. The csv
// tags double as the template headers.
type SourceRow struct {
	AccountNumber  string `csv:"Numéro de compte"`
	CompanyName    string `csv:"Raison sociale"`
	Address        string `csv:"Adresse"`
	ManagingBranch string `csv:"ManagingBranch"`
}

// Roster is the parsed input dataset: the headers actually present in the
// file plus the mapped rows, in file order.
type Roster struct {
	Headers []string
	Rows    []SourceRow
}

// ParsedAddress is the decomposition of a free-text address. Fields that
// could not be extracted stay empty; Country always carries a value
// (default "FR").
type ParsedAddress struct {
	HouseNumber string
	Street      string
	PostalCode  string
	City        string
	Country     string
}
