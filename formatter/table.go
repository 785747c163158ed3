package formatter

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	tt "github.com/konstankino/nameit/internal/types"
)

func writeTable(w io.Writer, reports []tt.FileReport) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"File", "Variable", "Finding"})

	for _, r := range reports {
		for _, f := range r.Findings {
			tw.AppendRow(table.Row{r.Filename, f.VariableName, f.Title})
		}
	}

	tw.Render()
	return nil
}
