package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_Text(t *testing.T) {
	stdout, _, err := execute(t, "list", "--filter", "stack")
	require.NoError(t, err)

	want := `stack (5)
  - is empty when created
  - grows beyond its initial capacity [pending]
  after a push (2)
    - has size 1
    - pops the pushed item
  when popping an empty stack (1) [pending]
    - returns ErrEmptyStack [pending]
`
	assert.Equal(t, want, stdout)
}

func TestList_JSON(t *testing.T) {
	stdout, _, err := execute(t, "list", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string  `json:"status"`
		Data   Listing `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)

	require.Len(t, resp.Data.Contexts, 3)
	names := []string{resp.Data.Contexts[0].Name, resp.Data.Contexts[1].Name, resp.Data.Contexts[2].Name}
	assert.Equal(t, []string{"before defined as a method", "stack", "describe failures"}, names)
	assert.Equal(t, 4, resp.Data.Contexts[2].Total)
}

func TestList_DoesNotRun(t *testing.T) {
	stdout, _, err := execute(t, "list", "--filter", "describe_failures")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "✗")
	assert.Contains(t, stdout, "describe failures (4)")
}
