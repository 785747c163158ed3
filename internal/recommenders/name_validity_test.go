package recommenders

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	tt "github.com/konstankino/nameit/internal/types"
)

func TestNameValiditySuggest(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		variable tt.Variable
		want     string
	}{
		{
			name:     "loop counter",
			variable: tt.NewVariable("i", tt.KindLet, "1", 0),
			want:     "",
		},
		{
			name:     "too short",
			variable: tt.NewVariable("ab", tt.KindLet, "1", 0),
			want:     "Line     0 Variable 'ab' seems odd. Please come up with a better name",
		},
		{
			name:     "capital before length",
			variable: tt.NewVariable("Foo", tt.KindLet, "1", 0),
			want:     "Line     0 Variable 'Foo' starts with Capital. Please come up with a better name",
		},
		{
			name:     "constant outside allow list",
			variable: tt.NewVariable("BAD", tt.KindConst, "1", 0),
			want:     "Line     0 CONSTANT 'BAD' seems odd. Please come up with a better name",
		},
		{
			name:     "screaming snake constant is still flagged",
			variable: tt.NewVariable("MAX_RETRIES", tt.KindConst, "3", 12),
			want:     "Line    12 CONSTANT 'MAX_RETRIES' seems odd. Please come up with a better name",
		},
		{
			name:     "allowed constant",
			variable: tt.NewVariable("MAX", tt.KindConst, "10", 0),
			want:     "",
		},
		{
			name:     "lowercase allowed name as constant",
			variable: tt.NewVariable("max", tt.KindConst, "10", 0),
			want:     "Line     0 CONSTANT 'max' seems odd. Please come up with a better name",
		},
		{
			name:     "leading underscore skips char rule",
			variable: tt.NewVariable("_x", tt.KindLet, "1", 0),
			want:     "Line     0 Variable '_x' seems odd. Please come up with a better name",
		},
		{
			name:     "underscore inside name",
			variable: tt.NewVariable("user_name", tt.KindVar, "1", 3),
			want:     "Line     3 Variable 'user_name' has terrible char in its name. Please consider renaming it.",
		},
		{
			name:     "char rule before capital",
			variable: tt.NewVariable("User_name", tt.KindGlobal, "1", 3),
			want:     "Line     3 Variable 'User_name' has terrible char in its name. Please consider renaming it.",
		},
		{
			name:     "allowed short name",
			variable: tt.NewVariable("data", tt.KindVar, "[]", 0),
			want:     "",
		},
		{
			name:     "single underscore",
			variable: tt.NewVariable("_", tt.KindGlobal, "1", 0),
			want:     "",
		},
		{
			name:     "good name",
			variable: tt.NewVariable("counter", tt.KindLet, "0", 0),
			want:     "",
		},
		{
			name:     "exactly max length",
			variable: tt.NewVariable(strings.Repeat("a", 25), tt.KindLet, "0", 0),
			want:     "",
		},
		{
			name:     "too long",
			variable: tt.NewVariable(strings.Repeat("a", 26), tt.KindLet, "0", 1),
			want:     "Line     1 Variable '" + strings.Repeat("a", 26) + "' seems odd. Please come up with a better name",
		},
		{
			name:     "counter is not allowed as constant",
			variable: tt.NewVariable("i", tt.KindConst, "0", 0),
			want:     "Line     0 CONSTANT 'i' seems odd. Please come up with a better name",
		},
	}

	r := NewNameValidity()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := r.Suggest(tt.variable)
			assert.Equal(t, tt.want, got.Title)
			assert.Equal(t, tt.variable.Name, got.VariableName)
		})
	}
}

func TestNameValidityName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "name-validity", NewNameValidity().Name())
}

func TestLineNumberPadding(t *testing.T) {
	t.Parallel()

	got := NewNameValidity().Suggest(tt.NewVariable("ab", tt.KindLet, "1", 123456))
	assert.True(t, strings.HasPrefix(got.Title, "Line 123456 Variable 'ab'"), got.Title)
}
