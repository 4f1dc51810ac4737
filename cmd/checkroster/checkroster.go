// Package checkroster handles the roster validation command
package checkroster

import (
	"pfgen/cmd/root"
	"pfgen/internal/assembler"
	"pfgen/internal/logging"
	"pfgen/internal/roster"

	"github.com/spf13/cobra"
)

// Cmd represents the checkroster command
var Cmd = &cobra.Command{
	Use:   "checkroster",
	Short: "Validate a roster file without generating anything",
	Long: `Validate a roster file: required columns, account number width
(7 digits) and managing branch width (4 digits). Every violation is
reported at once, with its 1-based row index.`,
	Run: checkFunc,
}

var inputFile string

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Roster file to validate (required)")
	if err := Cmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
}

func checkFunc(cmd *cobra.Command, args []string) {
	reader := roster.New(root.Cfg.Delimiter(), logging.NewLogrusAdapterFromLogger(root.Log))

	rows, err := reader.Read(inputFile)
	if err != nil {
		root.Log.Fatalf("%v", err)
	}
	if err := assembler.ValidateRoster(rows); err != nil {
		root.Log.Fatalf("%v", err)
	}
	root.Log.Infof("Roster is valid: %d rows", len(rows.Rows))
}
