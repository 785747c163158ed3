// Package recommenders holds the rule sets that evaluate extracted variables.
package recommenders

import tt "github.com/konstankino/nameit/internal/types"

// Recommender evaluates a single variable.
//
// Suggest never fails. A Finding with an empty title means the variable
// has no issue under this rule set.
type Recommender interface {
	// Name returns the name of the rule set.
	Name() string

	// Suggest evaluates v and returns at most one finding.
	Suggest(v tt.Variable) tt.Finding
}
