package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewListCmd(t *testing.T) {
	cmd := newListCmd()
	assert.Equal(t, "list [root]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, listLongDescription, cmd.Long)
}

func TestListCmdRegistered(t *testing.T) {
	found := false

	for _, sub := range rootCmd.Commands() {
		if sub.Name() == "list" {
			found = true
		}
	}

	assert.True(t, found, "list command not registered on root")
}
