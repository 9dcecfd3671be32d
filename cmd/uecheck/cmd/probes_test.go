package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/uecheck/internal/hostenv"
	"github.com/Aman-CERP/uecheck/internal/toolchain"
)

func TestProbesCmd_TextOutput(t *testing.T) {
	useEnv(t, hostenv.NewWindowsFake())

	out, err := execute(t, "probes")

	require.NoError(t, err)
	assert.Contains(t, out, toolchain.NameDotNet)
	assert.Contains(t, out, "informational")
	assert.Less(t, strings.Index(out, toolchain.NameDotNet), strings.Index(out, toolchain.NameOculusSDK))
}

func TestProbesCmd_JSONOutput(t *testing.T) {
	// Given: a probes command with --json
	useEnv(t, hostenv.NewWindowsFake())

	// When: listing probes
	out, err := execute(t, "probes", "--json")

	// Then: every probe appears in registration order
	require.NoError(t, err)
	var list []ProbeJSON
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list, 11)
	assert.Equal(t, ProbeJSON{Name: toolchain.NameDotNet, Required: true}, list[0])
	assert.Equal(t, ProbeJSON{Name: toolchain.NameOculusSDK, Required: false}, list[10])
}

