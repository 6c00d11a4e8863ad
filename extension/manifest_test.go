package extension

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestManifest(t *testing.T) {
	t.Parallel()

	store := NewMemoryExtensionStore()
	require.NoError(t, store.Add(Extension{
		Target: TargetOf[frame](), Name: "size", Kind: KindProperty,
		Version: semver.MustParse("1.2.0"),
		Value:   Property{GetFunc: func(any) (any, error) { return 0, nil }},
	}))
	require.NoError(t, store.Add(Extension{
		Target: TargetOf[crate](), Name: "weight", Kind: KindConstant, Value: 5,
	}))
	require.NoError(t, store.Add(Extension{
		Target: TargetOf[frame](), Name: "describe", Kind: KindMethod,
		Value: func(f frame) string { return "" }, Bound: true,
	}))

	out, err := Manifest(store)
	require.NoError(t, err)

	var entries []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 3)

	// Sorted by target, then name.
	assert.Equal(t, "weight", entries[0]["name"])
	assert.Equal(t, "describe", entries[1]["name"])
	assert.Equal(t, "size", entries[2]["name"])

	assert.Equal(t, "github.com/graftlabs/graft/extension.frame", entries[2]["target"])
	assert.Equal(t, "property", entries[2]["kind"])
	assert.Equal(t, "1.2.0", entries[2]["version"])
	assert.Equal(t, true, entries[1]["bound"])
}

func TestManifest_Empty(t *testing.T) {
	t.Parallel()

	out, err := Manifest(NewMemoryExtensionStore())
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}
