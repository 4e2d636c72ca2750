package finder

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/specrun/internal/builder"
)

func names(defs []*builder.Definition) []string {
	out := make([]string, len(defs))
	for i, d := range defs {
		out[i] = d.Name
	}
	return out
}

func TestRegistry_PreservesRegistrationOrder(t *testing.T) {
	r := NewRegistry(&builder.Definition{Name: "b"})
	r.Register(&builder.Definition{Name: "a"}, &builder.Definition{Name: "c"})

	defs, err := r.Definitions()
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, names(defs))
}

func TestRegistry_RejectsDuplicateRoots(t *testing.T) {
	r := NewRegistry(&builder.Definition{Name: "a"}, &builder.Definition{Name: "a"})

	_, err := r.Definitions()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate root context "a"`)
}

func TestRegistry_RejectsNil(t *testing.T) {
	r := NewRegistry(nil)

	_, err := r.Definitions()
	assert.Error(t, err)
}

func TestRegistry_ConcurrentRegister(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Register(&builder.Definition{Name: string(rune('a' + i))})
		}(i)
	}
	wg.Wait()

	defs, err := r.Definitions()
	require.NoError(t, err)
	assert.Len(t, defs, 10)
}

func TestFilter(t *testing.T) {
	r := NewRegistry(
		&builder.Definition{Name: "cart_checkout"},
		&builder.Definition{Name: "cart_items"},
		&builder.Definition{Name: "inventory"},
	)

	tests := []struct {
		pattern string
		want    []string
	}{
		{"", []string{"cart_checkout", "cart_items", "inventory"}},
		{"cart_*", []string{"cart_checkout", "cart_items"}},
		{"cart *", []string{"cart_checkout", "cart_items"}},
		{"inv?ntory", []string{"inventory"}},
		{"nothing", nil},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			defs, err := Filter(r, tt.pattern).Definitions()
			require.NoError(t, err)
			if tt.want == nil {
				assert.Empty(t, defs)
				return
			}
			assert.Equal(t, tt.want, names(defs))
		})
	}
}

func TestFilter_InvalidPattern(t *testing.T) {
	_, err := Filter(NewRegistry(), "[").Definitions()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter pattern")
}
