package dashboard

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/anikashraful/taskflow/internal/taskapi"
)

const csvHeader = "ID,Name,Project,Due Date,Priority,Assignees,Status"

// csvQuote always wraps s in double quotes, doubling embedded quotes. The
// text fields of the export are quoted unconditionally; encoding/csv
// quotes only when needed and would not emit this format.
func csvQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// WriteCSV writes the task export: one header row, one row per task. Name,
// project and the ";"-joined assignees are quoted; the due date is emitted
// exactly as stored by the server.
func WriteCSV(w io.Writer, tasks []taskapi.Task) error {
	if _, err := io.WriteString(w, csvHeader+"\n"); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, t := range tasks {
		row := fmt.Sprintf("%d,%s,%s,%s,%s,%s,%s\n",
			t.ID,
			csvQuote(t.Name),
			csvQuote(t.Project),
			t.DueDate.String(),
			t.Priority,
			csvQuote(strings.Join(t.Assignees, ";")),
			t.Status,
		)
		if _, err := io.WriteString(w, row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	return nil
}

// ExportFilename is "tasks_<date>.csv" for the given export instant.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("tasks_%s.csv", now.Format("2006-01-02"))
}
