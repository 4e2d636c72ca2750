package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/specrun/internal/demo"
	"github.com/roach88/specrun/internal/testutil"
)

// execute runs the root command against the demo suites with a
// deterministic clock and run ID.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := newRootCommand(&RootOptions{
		Finder: demo.Registry(),
		Clock:  testutil.NewDeterministicClock(),
		IDs:    testutil.NewFixedIDGenerator("run-1"),
	})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand(demo.Registry())
	require.NotNil(t, cmd)
	assert.Equal(t, "specrun", cmd.Use)
	assert.Contains(t, cmd.Long, "isolate failures")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(demo.Registry())
	commands := []string{"run", "list"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand(demo.Registry())

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
	assert.Contains(t, formatFlag.Usage, "text|html|wiki|json|table")

	require.NotNil(t, cmd.PersistentFlags().Lookup("no-color"))
	require.NotNil(t, cmd.PersistentFlags().Lookup("config"))
}

func TestRunCommandFlags(t *testing.T) {
	cmd := NewRootCommand(demo.Registry())
	runCmd, _, err := cmd.Find([]string{"run"})
	require.NoError(t, err)

	outputFlag := runCmd.Flags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)

	require.NotNil(t, runCmd.Flags().Lookup("filter"))
	require.NotNil(t, runCmd.Flags().Lookup("metrics-textfile"))
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := execute(t, "run", "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), `format "xml"`)
}

func TestMissingConfigFile(t *testing.T) {
	_, _, err := execute(t, "list", "--config", "/nonexistent/specrun.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "invalid configuration")
}
