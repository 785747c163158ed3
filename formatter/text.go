package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	tt "github.com/konstankino/nameit/internal/types"
)

// icon prefixes every finding line.
const icon = "\U0001F325"

var (
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	nameStyle    = color.New(color.FgYellow, color.Bold)
	messageStyle = color.New(color.FgWhite)
)

// writeText prints one line per finding:
//
//	<icon> <variable name padded to width> <title>
//
// A file header is printed before each file's findings when there is more
// than one report or showFilename is set.
func writeText(w io.Writer, reports []tt.FileReport, width int, showFilename bool) error {
	var builder strings.Builder
	multi := showFilename || len(reports) > 1
	for _, r := range reports {
		if len(r.Findings) == 0 {
			continue
		}
		if multi {
			builder.WriteString(lineStyle.Sprint("--> ") + fileStyle.Sprint(r.Filename) + "\n")
		}
		for _, f := range r.Findings {
			builder.WriteString(FormatFinding(f, width))
			builder.WriteString("\n")
		}
	}
	_, err := io.WriteString(w, builder.String())
	return err
}

// FormatFinding renders a single finding line without a trailing newline.
func FormatFinding(f tt.Finding, width int) string {
	name := runewidth.FillRight(f.VariableName, width)
	return fmt.Sprintf("%s %s %s", icon, nameStyle.Sprint(name), messageStyle.Sprint(f.Title))
}
