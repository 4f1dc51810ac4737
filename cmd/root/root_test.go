package root_test

import (
	"testing"

	"pfgen/cmd/root"

	"github.com/stretchr/testify/assert"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "pfgen", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "PF1-PF6")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestRootCommand_Flags(t *testing.T) {
	root.Init()

	logLevelFlag := root.Cmd.PersistentFlags().Lookup("log-level")
	assert.NotNil(t, logLevelFlag)

	logFormatFlag := root.Cmd.PersistentFlags().Lookup("log-format")
	assert.NotNil(t, logFormatFlag)
}
