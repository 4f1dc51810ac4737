// Package generate handles the table generation command
package generate

import (
	"time"

	"pfgen/cmd/root"
	"pfgen/internal/address"
	"pfgen/internal/assembler"
	"pfgen/internal/export"
	"pfgen/internal/logging"
	"pfgen/internal/models"
	"pfgen/internal/roster"

	"github.com/spf13/cobra"
)

// Cmd represents the generate command
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the PF1-PF6 tables from a roster file",
	Long: `Generate the PF1-PF6 provisioning tables from an account roster.

The roster must carry the columns "Numéro de compte", "Raison sociale",
"Adresse" and "ManagingBranch". Parameters can be given as flags or read
from a YAML file with --params; flags override the file.

Example:
  pfgen generate -i roster.xlsx -o out/ --company acme --punchout-user acme_punchout \
    --domain NetworkID --identity AN0100000123 --integration cXML`,
	Run: generateFunc,
}

var (
	inputFile             string
	outputDir             string
	outputFormat          string
	paramsFile            string
	companyID             string
	punchoutUserID        string
	domain                string
	identity              string
	viewMasterCatalog     string
	personalCatalogue     bool
	personalCatalogueName string
	integrationType       string
	locNameFromAddress    bool
)

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input roster file, .csv or .xlsx (required)")
	Cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default from config)")
	Cmd.Flags().StringVar(&outputFormat, "format", "", "Output format, xlsx or csv (default from config)")
	Cmd.Flags().StringVar(&paramsFile, "params", "", "YAML file with generation parameters")
	Cmd.Flags().StringVar(&companyID, "company", "", "Company identifier used in generated values and filenames")
	Cmd.Flags().StringVar(&punchoutUserID, "punchout-user", "", "punchoutUserID written into PF3-PF5")
	Cmd.Flags().StringVar(&domain, "domain", "", "Credential domain: NetworkID or DUNS")
	Cmd.Flags().StringVar(&identity, "identity", "", "Credential identity written into PF6")
	Cmd.Flags().StringVar(&viewMasterCatalog, "view-master-catalog", "True", `ViewMasterCatalog flag: "True" or "False"`)
	Cmd.Flags().BoolVar(&personalCatalogue, "personal-catalogue", false, "Enable the personal catalogue compound profile")
	Cmd.Flags().StringVar(&personalCatalogueName, "personal-catalogue-name", "", "Catalogue name, without the PC_ prefix")
	Cmd.Flags().StringVar(&integrationType, "integration", "", "Integration type: cXML or OCI")
	Cmd.Flags().BoolVar(&locNameFromAddress, "locname-from-address", false, "Fill PF1 locName with the roster address instead of the company name")
	if err := Cmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
}

func generateFunc(cmd *cobra.Command, args []string) {
	params, err := buildParams(cmd)
	if err != nil {
		root.Log.Fatalf("Error reading parameters: %v", err)
	}
	if err := params.Validate(); err != nil {
		root.Log.Fatalf("%v", err)
	}

	if outputDir == "" {
		outputDir = root.Cfg.Output.Directory
	}
	if outputFormat == "" {
		outputFormat = root.Cfg.Output.Format
	}

	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	reader := roster.New(root.Cfg.Delimiter(), logger)

	rows, err := reader.Read(inputFile)
	if err != nil {
		root.Log.Fatalf("%v", err)
	}

	parser := address.New(nil, root.Cfg.Address.DefaultCountry)
	tables, err := assembler.New(params, parser, logger).Assemble(rows)
	if err != nil {
		root.Log.Fatalf("%v", err)
	}

	writer := export.New(root.Cfg.Delimiter(), logger)
	paths, err := writer.WriteTables(tables, params.CompanyID, outputDir, outputFormat, time.Now())
	if err != nil {
		root.Log.Fatalf("Error writing tables: %v", err)
	}

	root.Log.Infof("Generated %d tables from %d roster rows", len(paths), len(rows.Rows))
	for _, path := range paths {
		root.Log.Infof("  %s", path)
	}
}

// buildParams assembles GenerationParameters from the optional params file
// plus flags. Changed flags take precedence over file values; config
// supplies the locName default when neither is set.
func buildParams(cmd *cobra.Command) (models.GenerationParameters, error) {
	var params models.GenerationParameters
	if paramsFile != "" {
		loaded, err := models.LoadParametersFile(paramsFile)
		if err != nil {
			return params, err
		}
		params = loaded
	} else {
		params.UseAddressForLocName = root.Cfg.Tables.UseAddressForLocName
	}

	flags := cmd.Flags()
	if flags.Changed("company") || params.CompanyID == "" {
		params.CompanyID = companyID
	}
	if flags.Changed("punchout-user") || params.PunchoutUserID == "" {
		params.PunchoutUserID = punchoutUserID
	}
	if flags.Changed("identity") || params.Identity == "" {
		params.Identity = identity
	}
	if flags.Changed("view-master-catalog") || params.ViewMasterCatalog == "" {
		params.ViewMasterCatalog = viewMasterCatalog
	}
	if flags.Changed("personal-catalogue") {
		params.PersonalCatalogueEnabled = personalCatalogue
	}
	if flags.Changed("personal-catalogue-name") || params.PersonalCatalogueName == "" {
		params.PersonalCatalogueName = personalCatalogueName
	}
	if flags.Changed("locname-from-address") {
		params.UseAddressForLocName = locNameFromAddress
	}
	if flags.Changed("domain") || params.Domain == "" {
		d, err := models.ParseDomain(domain)
		if err != nil {
			return params, err
		}
		params.Domain = d
	}
	if flags.Changed("integration") || params.IntegrationType == "" {
		it, err := models.ParseIntegrationType(integrationType)
		if err != nil {
			return params, err
		}
		params.IntegrationType = it
	}
	return params, nil
}
