// Package report runs recommenders over extracted variables and collects
// the resulting findings.
package report

import (
	"slices"

	"github.com/konstankino/nameit/internal/recommenders"
	tt "github.com/konstankino/nameit/internal/types"
)

// Report pairs the variables of one file with the recommenders to run on them.
type Report struct {
	variables    tt.Variables
	recommenders []recommenders.Recommender
}

func New(variables tt.Variables, recs []recommenders.Recommender) *Report {
	return &Report{
		variables:    variables,
		recommenders: recs,
	}
}

// Generate evaluates every variable with every recommender, recommender by
// recommender, and returns the non-empty findings in the order they were
// produced. Identical findings are kept once.
func (r *Report) Generate() []tt.Finding {
	findings := make([]tt.Finding, 0)
	for _, rec := range r.recommenders {
		for _, v := range r.variables {
			issue := rec.Suggest(v)
			if issue.IsEmpty() || slices.Contains(findings, issue) {
				continue
			}
			findings = append(findings, issue)
		}
	}
	return findings
}
