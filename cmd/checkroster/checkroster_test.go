package checkroster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand_Metadata(t *testing.T) {
	assert.Equal(t, "checkroster", Cmd.Use)
	assert.NotNil(t, Cmd.Run)
	assert.Equal(t, "i", Cmd.Flags().Lookup("input").Shorthand)
}
