// Package parser extracts declaration candidates from source lines with
// plain pattern matching. It does not understand any language grammar.
package parser

import (
	"regexp"
	"strings"

	tt "github.com/konstankino/nameit/internal/types"
)

// minLineLength is the shortest line that is considered for extraction.
const minLineLength = 4

// pattern binds a declaration regexp to the kind it yields.
type pattern struct {
	re   *regexp.Regexp
	kind tt.VariableKind
}

// word matches identifier characters, letters and digits of any script included.
const word = `[\p{L}\p{M}\p{Nd}\p{Pc}]+`

// patterns are applied in this order. The keyword-less assignment matches
// everything the others do, so it must stay last: the keyword kinds are
// recorded first and the later global duplicates are dropped.
var patterns = []pattern{
	{regexp.MustCompile(`let +(` + word + `) *?={1} *?([[:punct:][:alnum:]]+)\.*?`), tt.KindLet},
	{regexp.MustCompile(`var +(` + word + `) *?={1} *?([[:punct:][:alnum:]]+)\.*?`), tt.KindVar},
	{regexp.MustCompile(`const +(` + word + `) *?={1} *?([[:punct:][:alnum:]]+)\.*?`), tt.KindConst},
	{regexp.MustCompile(`(` + word + `) *?={1} *?([[:punct:][:alnum:]]+)\.*?`), tt.KindGlobal},
}

// Extract scans all lines of a file and returns the declared variables in
// first-seen order. A name is recorded once per file; later matches of the
// same name, under any kind, are ignored.
func Extract(lines []tt.Line) tt.Variables {
	var vars tt.Variables
	for _, line := range lines {
		ExtractLine(&vars, line)
	}
	return vars
}

// ExtractLine adds the candidates found on a single line to vars.
func ExtractLine(vars *tt.Variables, line tt.Line) {
	if len(line.Text) < minLineLength {
		return
	}

	for _, p := range patterns {
		for _, m := range p.re.FindAllStringSubmatch(line.Text, -1) {
			vars.Add(tt.NewVariable(m[1], p.kind, m[2], line.Number))
		}
	}
}

// SplitLines numbers the lines of source starting at 0. A trailing newline
// does not produce an extra empty line.
func SplitLines(source string) []tt.Line {
	texts := strings.Split(source, "\n")
	if n := len(texts); texts[n-1] == "" {
		texts = texts[:n-1]
	}

	lines := make([]tt.Line, len(texts))
	for i, text := range texts {
		lines[i] = tt.Line{Number: i, Text: strings.TrimSuffix(text, "\r")}
	}
	return lines
}
