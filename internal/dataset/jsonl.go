package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/huangsam/triage/internal/prompt"
	"github.com/huangsam/triage/schema"
)

// WriteChatJSONL writes one chat-format training example per line for the
// given reports. Reports without an assignee are rejected rather than
// silently skipped, because an unlabeled row reaching this point means the
// pipeline filtered incorrectly upstream.
func WriteChatJSONL(reports []schema.BugReport, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", outputPath, err)
	}
	defer func() { _ = file.Close() }()

	writer := bufio.NewWriter(file)
	encoder := json.NewEncoder(writer)
	for i := range reports {
		p, err := prompt.BuildTrainingPrompt(&reports[i])
		if err != nil {
			return fmt.Errorf("failed to format report for %q: %w", outputPath, err)
		}
		if err := encoder.Encode(prompt.ToChatExample(p)); err != nil {
			return fmt.Errorf("failed to encode example for %q: %w", outputPath, err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush %q: %w", outputPath, err)
	}
	return nil
}
