package recommenders

import (
	"fmt"
	"regexp"
	"strings"

	tt "github.com/konstankino/nameit/internal/types"
)

const (
	maxNameLength = 25
	minNameLength = 5

	poorChars = "&$-_"
)

var (
	constantNameRe = regexp.MustCompile(`^[A-Z_]`)
	capitalRe      = regexp.MustCompile(`^[A-Z]`)

	allowedConstants = map[string]struct{}{
		"MAX": {},
		"MIN": {},
	}

	// conventional short names that pass the length check.
	allowedNames = map[string]struct{}{
		"_": {}, "self": {}, "cors": {}, "url": {}, "ajax": {}, "xhr": {}, "id": {},
		"elem": {}, "href": {}, "data": {}, "fn": {}, "key": {}, "obj": {}, "tag": {},
		"body": {}, "list": {}, "dir": {}, "attr": {}, "len": {}, "node": {}, "rhs": {},
		"lhs": {}, "win": {}, "min": {}, "max": {}, "doc": {}, "ret": {}, "xml": {},
	}
)

// NameValidity checks variable names against a fixed set of naming
// conventions. The checks run in order and only the first one that fails
// is reported:
//
//  1. constants must be one of the allowed constant names
//  2. names must not contain any of & $ - _ unless they start with _
//  3. names must not start with a capital letter
//  4. names must be between 5 and 25 bytes long, except loop counters
//     (i, j, k, e) and a list of conventional short names
type NameValidity struct{}

func NewNameValidity() Recommender {
	return &NameValidity{}
}

func (r *NameValidity) Name() string {
	return "name-validity"
}

func (r *NameValidity) Suggest(v tt.Variable) tt.Finding {
	var title string
	switch {
	case v.Kind == tt.KindConst && !namedAsConstant(v.Name):
		title = fmt.Sprintf("Line %5d CONSTANT '%s' seems odd. Please come up with a better name", v.LineNumber, v.Name)
	case hasPoorChars(v.Name):
		title = fmt.Sprintf("Line %5d Variable '%s' has terrible char in its name. Please consider renaming it.", v.LineNumber, v.Name)
	case capitalRe.MatchString(v.Name):
		title = fmt.Sprintf("Line %5d Variable '%s' starts with Capital. Please come up with a better name", v.LineNumber, v.Name)
	case badLength(v.Name) && !isCounter(v.Name) && !isAllowedName(v.Name):
		title = fmt.Sprintf("Line %5d Variable '%s' seems odd. Please come up with a better name", v.LineNumber, v.Name)
	}

	return tt.Finding{
		Title:        title,
		VariableName: v.Name,
	}
}

// namedAsConstant requires both an allowed name and a leading capital or underscore.
func namedAsConstant(name string) bool {
	_, ok := allowedConstants[name]
	return ok && constantNameRe.MatchString(name)
}

func hasPoorChars(name string) bool {
	if strings.HasPrefix(name, "_") {
		return false
	}
	return strings.ContainsAny(name, poorChars)
}

func badLength(name string) bool {
	return len(name) > maxNameLength || len(name) < minNameLength
}

func isCounter(name string) bool {
	switch name {
	case "i", "j", "k", "e":
		return true
	}
	return false
}

func isAllowedName(name string) bool {
	_, ok := allowedNames[name]
	return ok
}
