package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand_Metadata(t *testing.T) {
	assert.Equal(t, "template", Cmd.Use)
	assert.NotNil(t, Cmd.Run)

	outputFlag := Cmd.Flags().Lookup("output")
	assert.NotNil(t, outputFlag)
	assert.Equal(t, "dfrecu_template.xlsx", outputFlag.DefValue)
}
