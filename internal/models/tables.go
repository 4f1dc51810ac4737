package models

// Output table names. The filename of every generated artifact starts with
// one of these.
const (
	TablePF1 = "PF1"
	TablePF2 = "PF2"
	TablePF3 = "PF3"
	TablePF4 = "PF4"
	TablePF5 = "PF5"
	TablePF6 = "PF6"
)

// Constant cell values shared by several tables.
const (
	ItemTypeBranchAssociation = "PunchoutAccountAndBranchAssociation"
	SealedFalse               = "false"
)

// PF1 configuration column headers. CXmI is not a typo: the provisioning
// import matches this exact spelling.
const (
	ConfigColumnCXML = "CXmIAssignedConfiguration"
	ConfigColumnOCI  = "OCIAssignedConfiguration"
)

// Table is one ordered output record set. Rows mirror the source roster
// order; Headers carries the schema the downstream import expects,
// column-for-column.
type Table struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// PF1Headers returns the PF1 schema for the given integration type. Only
// the configuration column name varies.
func PF1Headers(it IntegrationType) []string {
	config := ConfigColumnCXML
	if it == IntegrationOCI {
		config = ConfigColumnOCI
	}
	return []string{"uid", "name", "locName", config, "pcCompoundProfile", "ViewMasterCatalog"}
}

// PF2Headers is the address table schema. The French headers are the
// literal column names of the downstream address import.
var PF2Headers = []string{
	"B2B Unit",
	"ADRESSE / Numéro de rue",
	"ADRESSE / rue",
	"ADRESSEE Code postal",
	"ADRESSE / Ville",
	"ADRESSE / Pays/Région",
	"INFORMATIONS D'ADRESSE SUPPLÉMENTAIRES / Téléphone 1",
}

// PF3Headers is the account-to-branch association table schema.
var PF3Headers = []string{"B2BUnitID", "itemtype", "managingBranches", "punchoutUserID", "sealed"}

// PF4Headers is the branch alias table schema.
var PF4Headers = []string{"aliasName", "branch", "punchoutUserID", "sealed"}

// PF5Headers is the account-to-user assignment table schema.
var PF5Headers = []string{"B2BUnitID", "punchoutUserID"}

// PF6Headers is the cXML credential table schema. The table is produced
// only for cXML integrations.
var PF6Headers = []string{"number", "domain", "identity"}

// TableNames returns the names of the tables produced for the given
// integration type, in output order. PF6 exists only for cXML.
func TableNames(it IntegrationType) []string {
	names := []string{TablePF1, TablePF2, TablePF3, TablePF4, TablePF5}
	if it == IntegrationCXML {
		names = append(names, TablePF6)
	}
	return names
}
