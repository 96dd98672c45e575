package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its output
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetBuiltinFlags(rootCmd)
	t.Cleanup(func() {
		lookupJSON = false
		lookupDirectory = ""
		viper.Reset()
		resetBuiltinFlags(rootCmd)
	})

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// resetBuiltinFlags clears --help and --version, which cobra keeps set on
// the shared command tree between executions
func resetBuiltinFlags(c *cobra.Command) {
	for _, name := range []string{"help", "version"} {
		if f := c.Flags().Lookup(name); f != nil {
			_ = f.Value.Set("false")
			f.Changed = false
		}
	}
	for _, sub := range c.Commands() {
		resetBuiltinFlags(sub)
	}
}

func TestRootCommand_FlagsDoNotLeak(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Softphone for the terminal")

	out, err = execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "commit:")
	assert.NotContains(t, out, "Softphone for the terminal")

	out, err = execute(t, "lookup", "+1 (555) 123-4567")
	require.NoError(t, err)
	assert.Contains(t, out, "Sarah Wilson")
	assert.NotContains(t, out, "commit:")
}

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "No arguments shows help",
			args:     []string{},
			contains: []string{"Softphone for the terminal", "tui", "lookup"},
		},
		{
			name:     "Help flag",
			args:     []string{"--help"},
			contains: []string{"Softphone for the terminal"},
		},
		{
			name:     "Version flag",
			args:     []string{"--version"},
			contains: []string{"commit:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestLookupCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"formatted number", []string{"lookup", "+1 (555) 123-4567"}, "Sarah Wilson"},
		{"international prefix", []string{"lookup", "0015559876543"}, "Mike Johnson"},
		{"without country code", []string{"lookup", "555-987-6543"}, "Mike Johnson"},
		{"unknown", []string{"lookup", "42"}, "no matching contact"},
		{"json", []string{"lookup", "+1 555 456 7890", "--json"}, `"name":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestLookupCommand_RequiresNumber(t *testing.T) {
	_, err := execute(t, "lookup")
	assert.Error(t, err)
}

func TestApplyLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Cleanup(viper.Reset)

	viper.Set("log.level", "nonsense")
	assert.Error(t, applyLogLevel())

	viper.Set("log.level", "warn")
	assert.NoError(t, applyLogLevel())
}
