package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand_AllValid(t *testing.T) {
	cfgPath := writeTestConfig(t, "")

	output, err := executeCommand(t, "--config", cfgPath, "validate",
		"https://example.com", "http://localhost")

	require.NoError(t, err)
	assert.Contains(t, output, "valid  https://example.com")
	assert.Contains(t, output, "valid  http://localhost")
}

func TestValidateCommand_Invalid(t *testing.T) {
	cfgPath := writeTestConfig(t, "")

	output, err := executeCommand(t, "--config", cfgPath, "validate",
		"https://example.com", "ftp://example.com")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 urls failed validation")
	assert.Contains(t, output, "invalid  ftp://example.com")
}

func TestValidateCommand_JSON(t *testing.T) {
	cfgPath := writeTestConfig(t, "")

	output, err := executeCommand(t, "--config", cfgPath, "-f", "json", "validate", "http://internal")

	require.Error(t, err)

	var verdicts []verdict
	require.NoError(t, json.Unmarshal([]byte(output), &verdicts))
	require.Len(t, verdicts, 1)
	assert.Equal(t, "http://internal", verdicts[0].URL)
	assert.False(t, verdicts[0].Valid)
	assert.Contains(t, verdicts[0].Reason, "not a domain or localhost")
}

func TestValidateCommand_NoArgs(t *testing.T) {
	cfgPath := writeTestConfig(t, "")

	_, err := executeCommand(t, "--config", cfgPath, "validate")

	require.Error(t, err)
}
