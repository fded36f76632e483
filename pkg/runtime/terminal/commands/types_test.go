package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypesCmd_ListsCatalog(t *testing.T) {
	var out bytes.Buffer
	cmd := NewTypesCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(nil)

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Microsoft.Compute/virtualMachines")
	assert.Contains(t, out.String(), "Azure Virtual Machines")
	assert.Contains(t, out.String(), "Microsoft.Network/virtualNetworks")
}
