package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/konstankino/nameit/internal/nolint"
	"github.com/konstankino/nameit/internal/parser"
	"github.com/konstankino/nameit/internal/recommenders"
	"github.com/konstankino/nameit/internal/report"
	tt "github.com/konstankino/nameit/internal/types"
)

// ErrInputUnavailable is returned when a source file cannot be read.
var ErrInputUnavailable = errors.New("input unavailable")

// Define the recommenderConstructor type
type recommenderConstructor func() recommenders.Recommender

// defaultRecommenders lists the built-in rule sets in evaluation order.
var defaultRecommenders = []recommenderConstructor{
	recommenders.NewNameValidity,
}

// Engine manages the linting process.
type Engine struct {
	recommenders []recommenders.Recommender
}

// NewEngine creates a new lint engine with the built-in recommenders.
func NewEngine() *Engine {
	recs := make([]recommenders.Recommender, 0, len(defaultRecommenders))
	for _, newRecommender := range defaultRecommenders {
		recs = append(recs, newRecommender())
	}
	return NewEngineWith(recs...)
}

// NewEngineWith creates a lint engine that runs the given recommenders in order.
func NewEngineWith(recs ...recommenders.Recommender) *Engine {
	return &Engine{recommenders: recs}
}

// Recommenders returns the names of the registered recommenders.
func (e *Engine) Recommenders() []string {
	names := make([]string, 0, len(e.recommenders))
	for _, r := range e.recommenders {
		names = append(names, r.Name())
	}
	return names
}

// Run reads the given file and returns its findings.
func (e *Engine) Run(filename string) ([]tt.Finding, error) {
	sourceCode, err := ReadSourceCode(filename)
	if err != nil {
		return nil, err
	}
	return e.RunLines(sourceCode.Lines), nil
}

// RunSource lints source held in memory.
func (e *Engine) RunSource(source []byte) []tt.Finding {
	return e.RunLines(parser.SplitLines(string(source)))
}

// RunLines extracts the variables declared in lines and evaluates them.
func (e *Engine) RunLines(lines []tt.Line) []tt.Finding {
	vars := parser.Extract(lines)
	nolintMgr := nolint.ParseLines(lines)

	recs := make([]recommenders.Recommender, 0, len(e.recommenders))
	for _, r := range e.recommenders {
		recs = append(recs, &nolintRecommender{Recommender: r, nolintMgr: nolintMgr})
	}

	return report.New(vars, recs).Generate()
}

// nolintRecommender hides the findings of variables declared on nolinted lines.
type nolintRecommender struct {
	recommenders.Recommender
	nolintMgr *nolint.Manager
}

func (r *nolintRecommender) Suggest(v tt.Variable) tt.Finding {
	if r.nolintMgr.IsNolint(v.LineNumber, r.Name()) {
		return tt.Finding{VariableName: v.Name}
	}
	return r.Recommender.Suggest(v)
}

// SourceCode stores the numbered lines of a source file.
type SourceCode struct {
	Filename string
	Lines    []tt.Line
}

// ReadSourceCode reads the content of a file and returns it as a `SourceCode` struct.
func ReadSourceCode(filename string) (*SourceCode, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}
	return &SourceCode{
		Filename: filename,
		Lines:    parser.SplitLines(string(content)),
	}, nil
}
