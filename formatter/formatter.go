// Package formatter renders lint reports for the console.
package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	tt "github.com/konstankino/nameit/internal/types"
)

// Format is an output format.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// DefaultNameWidth is the display width the variable name is padded to.
const DefaultNameWidth = 25

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatTable}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (expected one of text, json, table)", name)
}

// Options controls rendering.
type Options struct {
	Format    Format
	NameWidth int

	// ShowFilename prints the file header in text output even for a single report.
	ShowFilename bool
}

// Write renders reports to w.
func Write(w io.Writer, reports []tt.FileReport, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		return writeJSON(w, reports)
	case FormatTable:
		return writeTable(w, reports)
	case FormatText, "":
		width := opts.NameWidth
		if width <= 0 {
			width = DefaultNameWidth
		}
		return writeText(w, reports, width, opts.ShowFilename)
	default:
		return fmt.Errorf("unknown output format %q", opts.Format)
	}
}

func writeJSON(w io.Writer, reports []tt.FileReport) error {
	if reports == nil {
		reports = []tt.FileReport{}
	}
	d, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshalling reports to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(d))
	return err
}
