// Package template handles the roster template command
package template

import (
	"pfgen/cmd/root"
	"pfgen/internal/export"
	"pfgen/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the template command
var Cmd = &cobra.Command{
	Use:   "template",
	Short: "Write the empty roster template",
	Long: `Write the empty roster template with the required columns
("Numéro de compte", "Raison sociale", "Adresse", "ManagingBranch").
The output extension decides the format: .csv or .xlsx.`,
	Run: templateFunc,
}

var outputFile string

func init() {
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "dfrecu_template.xlsx", "Template file to write")
}

func templateFunc(cmd *cobra.Command, args []string) {
	writer := export.New(root.Cfg.Delimiter(), logging.NewLogrusAdapterFromLogger(root.Log))
	if err := writer.WriteTemplate(outputFile); err != nil {
		root.Log.Fatalf("Error writing template: %v", err)
	}
	root.Log.Infof("Template written to %s", outputFile)
}
