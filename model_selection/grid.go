package model_selection

import (
	"sort"
)

// Params is one concrete hyperparameter assignment for an estimator.
type Params map[string]interface{}

// Clone returns a shallow copy of the parameter assignment.
func (p Params) Clone() Params {
	c := make(Params, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

// merge overlays fixed constructor arguments onto a candidate assignment.
// The candidate's own values win on key collision.
func (p Params) merge(fixed Params) Params {
	if len(fixed) == 0 {
		return p
	}
	merged := make(Params, len(p)+len(fixed))
	for k, v := range fixed {
		merged[k] = v
	}
	for k, v := range p {
		merged[k] = v
	}
	return merged
}

// ParamGrid maps parameter names to their candidate value lists. Its
// enumeration is the full Cartesian product of the lists.
type ParamGrid map[string][]interface{}

// Size returns the number of candidates the grid enumerates to.
func (g ParamGrid) Size() int {
	size := 1
	for _, values := range g {
		size *= len(values)
	}
	return size
}

// Enumerate expands the grid into every candidate assignment. The order is
// deterministic: parameter names are sorted and the last name varies
// fastest, matching scikit-learn's ParameterGrid. An empty grid yields a
// single empty assignment.
func (g ParamGrid) Enumerate() []Params {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)

	candidates := make([]Params, 0, g.Size())

	// Odometer over the value lists, rightmost digit fastest.
	counters := make([]int, len(names))
	for {
		candidate := make(Params, len(names))
		for i, name := range names {
			values := g[name]
			if len(values) == 0 {
				return nil
			}
			candidate[name] = values[counters[i]]
		}
		candidates = append(candidates, candidate)

		pos := len(names) - 1
		for pos >= 0 {
			counters[pos]++
			if counters[pos] < len(g[names[pos]]) {
				break
			}
			counters[pos] = 0
			pos--
		}
		if pos < 0 {
			break
		}
	}

	return candidates
}
