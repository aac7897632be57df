package model_selection

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamGridEnumerate(t *testing.T) {
	grid := ParamGrid{
		"b": {"x", "y"},
		"a": {1, 2},
	}

	got := grid.Enumerate()
	require.Len(t, got, 4)

	// Sorted names, last name varies fastest.
	want := []Params{
		{"a": 1, "b": "x"},
		{"a": 1, "b": "y"},
		{"a": 2, "b": "x"},
		{"a": 2, "b": "y"},
	}
	assert.Equal(t, want, got)
}

func TestParamGridEnumerateComplete(t *testing.T) {
	grid := ParamGrid{
		"C":     {0.1, 1.0, 10.0},
		"depth": {3, 5},
		"mode":  {"fast"},
	}

	candidates := grid.Enumerate()
	require.Len(t, candidates, grid.Size())
	require.Equal(t, 6, grid.Size())

	// No duplicates, no omissions.
	seen := make(map[string]bool)
	for _, c := range candidates {
		key := fmt.Sprintf("%v|%v|%v", c["C"], c["depth"], c["mode"])
		assert.False(t, seen[key], "duplicate candidate %v", c)
		seen[key] = true
	}
	for _, cValue := range grid["C"] {
		for _, dValue := range grid["depth"] {
			key := fmt.Sprintf("%v|%v|%v", cValue, dValue, "fast")
			assert.True(t, seen[key], "missing candidate %s", key)
		}
	}
}

func TestParamGridEnumerateEmpty(t *testing.T) {
	got := ParamGrid{}.Enumerate()
	require.Len(t, got, 1)
	assert.Empty(t, got[0])
}

func TestParamGridEmptyValueList(t *testing.T) {
	grid := ParamGrid{"a": {}}
	assert.Nil(t, grid.Enumerate())
	assert.Equal(t, 0, grid.Size())
}

func TestParamsMerge(t *testing.T) {
	candidate := Params{"C": 1.0}
	fixed := Params{"C": 99.0, "verbose": true}

	merged := candidate.merge(fixed)
	assert.Equal(t, 1.0, merged["C"], "candidate value wins on collision")
	assert.Equal(t, true, merged["verbose"])

	// merge with no fixed params returns the candidate untouched.
	same := candidate.merge(nil)
	assert.Equal(t, candidate, same)
}

func TestParamsClone(t *testing.T) {
	p := Params{"C": 1.0}
	c := p.Clone()
	c["C"] = 2.0
	assert.Equal(t, 1.0, p["C"])
}
