package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCmd executes the root command with args and returns its output.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestGreetCmd(t *testing.T) {
	out, err := runCmd(t, "greet", "Ada")

	require.NoError(t, err)
	assert.Equal(t, "Hello, Ada!\n", out)
}

func TestGreetCmd_RequiresName(t *testing.T) {
	_, err := runCmd(t, "greet")
	assert.Error(t, err)
}

func TestAddCmd(t *testing.T) {
	out, err := runCmd(t, "add", "2", "3")

	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestMultiplyCmd(t *testing.T) {
	out, err := runCmd(t, "multiply", "2", "3")

	require.NoError(t, err)
	assert.Equal(t, "6\n", out)
}

func TestAddCmd_Fractions(t *testing.T) {
	out, err := runCmd(t, "add", "0.5", "0.25")

	require.NoError(t, err)
	assert.Equal(t, "0.75\n", out)
}

func TestAddCmd_InvalidNumber(t *testing.T) {
	_, err := runCmd(t, "add", "two", "3")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"two" is not a number`)
}

func TestDoubleCmd(t *testing.T) {
	out, err := runCmd(t, "double", "1", "2", "3")

	require.NoError(t, err)
	assert.Equal(t, "[2, 4, 6]\n", out)
}

func TestDoubleCmd_Empty(t *testing.T) {
	out, err := runCmd(t, "double")

	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{5, "5"},
		{-2, "-2"},
		{1.5, "1.5"},
		{1e21, "1e+21"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, formatNumber(tt.input))
	}
}
