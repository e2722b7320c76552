package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeSet_Resolve(t *testing.T) {
	set := NewModeSet()
	foo := set.AddMode("foo", nil)
	foo.AddOption("bar", false)
	sub := foo.AddMode("sub", nil)
	deep := sub.AddMode("deep", nil)
	leaf := set.AddMode("leaf", nil)

	tests := map[string]struct {
		args          []string
		expectedStack []*Mode
		expectedRest  []string
	}{
		"Empty": {
			args: nil,
		},
		"Partial path": {
			args:          []string{"foo"},
			expectedStack: []*Mode{foo},
		},
		"Partial path with options": {
			args:          []string{"foo", "--bar=bar"},
			expectedStack: []*Mode{foo},
			expectedRest:  []string{"--bar=bar"},
		},
		"Full path": {
			args:          []string{"foo", "sub", "deep", "--bar=1"},
			expectedStack: []*Mode{foo, sub, deep},
			expectedRest:  []string{"--bar=1"},
		},
		"Unknown top-level": {
			args:         []string{"nope", "foo"},
			expectedRest: []string{"nope", "foo"},
		},
		"Unknown sub-mode": {
			args:          []string{"foo", "nope", "sub"},
			expectedStack: []*Mode{foo},
			expectedRest:  []string{"nope", "sub"},
		},
		"Leaf stops descent": {
			args:          []string{"leaf", "foo"},
			expectedStack: []*Mode{leaf},
			expectedRest:  []string{"foo"},
		},
		"Options before modes": {
			args:         []string{"--bar=1", "foo"},
			expectedRest: []string{"--bar=1", "foo"},
		},
		"Sub-mode name at top level": {
			args:         []string{"sub"},
			expectedRest: []string{"sub"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			stack, rest := set.Resolve(tc.args)
			assert.Equal(t, len(tc.expectedStack), len(stack))
			for i := range tc.expectedStack {
				assert.Same(t, tc.expectedStack[i], stack[i])
			}
			if len(tc.expectedRest) == 0 {
				assert.Empty(t, rest)
				return
			}
			assert.Equal(t, tc.expectedRest, rest)
		})
	}
}

func TestModeSet_AddMode(t *testing.T) {
	set := NewModeSet()
	first := set.AddMode("foo", nil)
	set.AddMode("bar", nil)
	assert.Equal(t, []string{"bar", "foo"}, set.Modes())

	got, ok := set.Mode("foo")
	assert.True(t, ok)
	assert.Same(t, first, got)

	second := set.AddMode("foo", nil)
	got, _ = set.Mode("foo")
	assert.Same(t, second, got, "Registering again should replace the mode")
	assert.Equal(t, []string{"foo"}, second.Path())
}

func TestModeSet_Reset(t *testing.T) {
	var zero ModeSet
	zero.AddMode("lazy", nil)
	_, ok := zero.Mode("lazy")
	assert.True(t, ok, "The zero value should be usable for registration")

	set := NewModeSet()
	set.AddMode("foo", nil)
	set.Reset()
	assert.Empty(t, set.Modes())
	stack, rest := set.Resolve([]string{"foo"})
	assert.Empty(t, stack)
	assert.Equal(t, []string{"foo"}, rest)
}
