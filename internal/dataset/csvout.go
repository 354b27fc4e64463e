package dataset

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/huangsam/triage/schema"
)

// testCSVHeader is the column order of the held-out test file.
const testCSVHeader = "title,body,assignee"

// utf8BOM prefixes the test CSV so spreadsheet tools detect the encoding.
const utf8BOM = "\ufeff"

// WriteTestCSV writes the held-out test split. The header row is unquoted and
// every data cell is quoted, which keeps embedded newlines in report bodies
// intact while leaving the header greppable. The assignee travels in its own
// column, outside the text a model would ever see.
func WriteTestCSV(reports []schema.BugReport, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", outputPath, err)
	}
	defer func() { _ = file.Close() }()

	writer := bufio.NewWriter(file)
	if _, err := writer.WriteString(utf8BOM + testCSVHeader + "\r\n"); err != nil {
		return fmt.Errorf("failed to write header to %q: %w", outputPath, err)
	}
	for _, r := range reports {
		row := strings.Join([]string{
			quoteCell(r.Title),
			quoteCell(r.Body),
			quoteCell(r.Assignee),
		}, ",")
		if _, err := writer.WriteString(row + "\r\n"); err != nil {
			return fmt.Errorf("failed to write row to %q: %w", outputPath, err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush %q: %w", outputPath, err)
	}
	return nil
}

// quoteCell wraps a cell in double quotes unconditionally, doubling any
// embedded quotes per RFC 4180.
func quoteCell(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
