package nolint

import (
	"fmt"
	"strings"

	tt "github.com/konstankino/nameit/internal/types"
)

const (
	directivePrefix = "nameit:"

	ignoreLine     = "ignore"
	ignoreNextLine = "ignore-next-line"
	ignoreFile     = "ignore-file"
)

// Manager manages nolint scopes and checks if a line is nolinted.
type Manager struct {
	scopes []nolintScope
}

// nolintScope represents a range of lines where nolint applies.
// An end of -1 means the scope runs to the end of the file.
type nolintScope struct {
	rules map[string]struct{}
	start int
	end   int
}

// ParseLines collects the nameit directives found in the given lines.
//
//	let Foo = 1 // nameit:ignore
//	// nameit:ignore-next-line:name-validity
//	// nameit:ignore-file
func ParseLines(lines []tt.Line) *Manager {
	manager := Manager{}
	for _, line := range lines {
		idx := strings.Index(line.Text, directivePrefix)
		if idx < 0 {
			continue
		}
		ns, err := parseDirective(line.Text[idx+len(directivePrefix):], line.Number)
		if err != nil {
			// ignore invalid directives
			continue
		}
		manager.scopes = append(manager.scopes, ns)
	}
	return &manager
}

// parseDirective parses the text following "nameit:" on line.
func parseDirective(text string, line int) (nolintScope, error) {
	var ns nolintScope

	text = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "*/"))
	if fields := strings.Fields(text); len(fields) > 0 {
		text = fields[0]
	}

	name, rest, hasRules := strings.Cut(text, ":")
	if hasRules && strings.TrimSpace(rest) == "" {
		return ns, fmt.Errorf("invalid nolint directive: no rules specified after colon")
	}
	ns.rules = parseIgnoreRuleNames(rest)

	switch name {
	case ignoreLine:
		ns.start, ns.end = line, line
	case ignoreNextLine:
		ns.start, ns.end = line+1, line+1
	case ignoreFile:
		ns.start, ns.end = 0, -1
	default:
		return ns, fmt.Errorf("unknown nolint directive %q", name)
	}
	return ns, nil
}

// parseIgnoreRuleNames parses the rule list from the directive.
func parseIgnoreRuleNames(text string) map[string]struct{} {
	rulesMap := make(map[string]struct{})
	if text == "" {
		return rulesMap
	}
	for _, rule := range strings.Split(text, ",") {
		rule = strings.TrimSpace(rule)
		if rule != "" {
			rulesMap[rule] = struct{}{}
		}
	}
	return rulesMap
}

// IsNolint checks if a given line and rule are nolinted.
func (m *Manager) IsNolint(line int, ruleName string) bool {
	if m == nil {
		return false
	}
	for _, ns := range m.scopes {
		if line < ns.start || (ns.end >= 0 && line > ns.end) {
			continue
		}
		// If the rules list is empty, nolint applies to all rules
		if len(ns.rules) == 0 {
			return true
		}
		if _, exists := ns.rules[ruleName]; exists {
			return true
		}
	}
	return false
}
