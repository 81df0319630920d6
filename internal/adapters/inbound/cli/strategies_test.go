package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategiesCommand(t *testing.T) {
	out, err := runCommand(t, "strategies")
	require.NoError(t, err)
	assert.Contains(t, out, "remove-console-log")
	assert.Contains(t, out, "env-extract-secret")
	assert.Contains(t, out, "console_log_in_production")
}

func TestStrategiesCommand_JSON(t *testing.T) {
	out, err := runCommand(t, "strategies", "--json")
	require.NoError(t, err)

	var result []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result), "output should be valid JSON array")
	assert.GreaterOrEqual(t, len(result), 10)
	assert.Contains(t, result[0], "id")
	assert.Contains(t, result[0], "confidence")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "remedy")
	assert.Contains(t, out, "dev")
}

func TestUnknownCommand(t *testing.T) {
	_, err := runCommand(t, "nonsense")
	assert.Error(t, err)
}
