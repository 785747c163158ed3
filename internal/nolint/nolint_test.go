package nolint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/konstankino/nameit/internal/parser"
)

func TestParseNolintRules(t *testing.T) {
	t.Parallel()
	input := "rule1, rule2,rule3,"
	result := parseIgnoreRuleNames(input)

	assert.Len(t, result, 3)
	for _, rule := range []string{"rule1", "rule2", "rule3"} {
		assert.Contains(t, result, rule)
	}
}

func TestIsNolint(t *testing.T) {
	t.Parallel()
	src := `let Foo = 1 // nameit:ignore
// nameit:ignore-next-line:name-validity
let Bar = 2
let Baz = 3 /* nameit:ignore:other-rule */
let Qux = 4
`
	manager := ParseLines(parser.SplitLines(src))

	tests := []struct {
		name string
		line int
		rule string
		want bool
	}{
		{"inline all rules", 0, "name-validity", true},
		{"directive line itself", 1, "name-validity", false},
		{"next line matching rule", 2, "name-validity", true},
		{"next line other rule", 2, "other-rule", false},
		{"inline other rule only", 3, "name-validity", false},
		{"inline listed rule", 3, "other-rule", true},
		{"plain line", 4, "name-validity", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, manager.IsNolint(tt.line, tt.rule))
		})
	}
}

func TestIgnoreFile(t *testing.T) {
	t.Parallel()
	src := `let a = 1
let b = 2
// nameit:ignore-file
let c = 3
`
	manager := ParseLines(parser.SplitLines(src))

	for line := 0; line < 10; line++ {
		assert.True(t, manager.IsNolint(line, "name-validity"), "line %d", line)
	}
}

func TestInvalidDirectivesAreIgnored(t *testing.T) {
	t.Parallel()
	src := `let Foo = 1 // nameit:ignore:
let Bar = 2 // nameit:disable
let Baz = 3 // nameit:ignored
`
	manager := ParseLines(parser.SplitLines(src))

	assert.Empty(t, manager.scopes)
	assert.False(t, manager.IsNolint(0, "name-validity"))
}

func TestNilManager(t *testing.T) {
	t.Parallel()

	var m *Manager
	assert.False(t, m.IsNolint(0, "name-validity"))
}
