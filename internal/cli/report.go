package cli

import (
	"fmt"

	"github.com/jmylchreest/spritesize/internal/batch"
)

const reportErrorWidth = 72

// renderReport lists every sprite that was present on disk.
// Missing sprites are only counted.
func renderReport(summary *batch.Summary) string {
	table := NewTable([]string{"#", "File", "Status", "Error"})
	table.SetColumnMaxWidth(3, reportErrorWidth)

	for _, r := range summary.Results {
		if r.Status == batch.StatusNotFound {
			continue
		}
		errText := ""
		if r.Err != nil {
			errText = r.Err.Error()
		}
		table.AddRow([]string{fmt.Sprintf("%d", r.Index), r.Filename, r.Status.String(), errText})
	}

	return table.Render() + fmt.Sprintf("%d resized, %d missing, %d failed\n",
		summary.Resized(), summary.NotFound(), summary.Failed())
}
