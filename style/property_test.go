package style_test

import (
	"testing"

	"github.com/aymerick/douceur/css"
	"github.com/bryanwills/posting/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitShorthandPadding(t *testing.T) {
	tests := []struct {
		value string
		want  [4]string // top right bottom left
	}{
		{"1", [4]string{"1", "1", "1", "1"}},
		{"0 1", [4]string{"0", "1", "0", "1"}},
		{"1 2 3 4", [4]string{"1", "2", "3", "4"}},
	}
	for _, tc := range tests {
		kvs, err := style.SplitShorthand("padding", style.Property(tc.value))
		require.NoError(t, err, "padding: %s", tc.value)
		require.Len(t, kvs, 4)
		assert.Equal(t, "padding-top", kvs[0].Key)
		for i, kv := range kvs {
			assert.Equal(t, tc.want[i], kv.Value.String(), "padding: %s", tc.value)
		}
	}
}

func TestSplitShorthandBadCount(t *testing.T) {
	_, err := style.SplitShorthand("padding", "1 2 3")
	assert.Error(t, err, "3 values are not a valid edge shorthand")
}

func TestSplitShorthandBorder(t *testing.T) {
	kvs, err := style.SplitShorthand("border", "tall #ff0000")
	require.NoError(t, err)
	require.Len(t, kvs, 4)
	for _, kv := range kvs {
		assert.Equal(t, "tall #ff0000", kv.Value.String())
	}
	assert.Equal(t, "border-left", kvs[3].Key)
}

func TestSplitShorthandOffset(t *testing.T) {
	kvs, err := style.SplitShorthand("offset", "2 -1")
	require.NoError(t, err)
	require.Len(t, kvs, 2)
	assert.Equal(t, "offset-x", kvs[0].Key)
	assert.Equal(t, "-1", kvs[1].Value.String())
}

func TestResolvedStyleEquals(t *testing.T) {
	a := style.ResolvedStyle{
		"color":   css.Declaration{Property: "color", Value: "#ff0000"},
		"padding": css.Declaration{Property: "padding", Value: "0 1"},
	}
	b := style.ResolvedStyle{
		"color":   css.Declaration{Property: "color", Value: "#ff0000"},
		"padding": css.Declaration{Property: "padding", Value: "0 1"},
	}
	assert.True(t, a.Equals(b))
	b["color"] = css.Declaration{Property: "color", Value: "#00ff00"}
	assert.False(t, a.Equals(b))
	delete(b, "color")
	assert.False(t, a.Equals(b))
}
