// Package prompt converts bug reports into the chat-format prompts consumed
// by the fine-tuning framework. Training and inference paths produce distinct
// types so the supervision label cannot reach model input by accident.
package prompt

import (
	"fmt"

	"github.com/huangsam/triage/schema"
)

// SystemPrompt instructs the model on the triage task. It is identical for
// training and inference; only the assistant turn differs.
const SystemPrompt = "You are an expert bug triager for a large software project. " +
	"Given a bug report, respond with the identifier of the single developer " +
	"best suited to fix it, and nothing else."

// userPromptTemplate renders the report fields shown to the model.
// Only title and body ever flow into it.
const userPromptTemplate = "Bug title: %s\n\nBug description: %s"

// FormatUserText renders the user turn for a report. This is the single place
// report fields become model input, shared by both prompt paths so the
// training and evaluation distributions cannot drift apart.
func FormatUserText(r *schema.BugReport) string {
	return fmt.Sprintf(userPromptTemplate, r.Title, r.Body)
}

// BuildInferencePrompt formats a report for evaluation-time inference.
// The assignee label is deliberately unreachable from here.
func BuildInferencePrompt(r *schema.BugReport) schema.InferencePrompt {
	return schema.InferencePrompt{
		ReportID: r.ID,
		Text:     FormatUserText(r),
	}
}

// BuildTrainingPrompt formats a report for supervised fine-tuning. It fails
// when the report carries no assignee, since an unlabeled example would train
// the model to emit empty strings.
func BuildTrainingPrompt(r *schema.BugReport) (schema.TrainingPrompt, error) {
	if !r.HasAssignee() {
		return schema.TrainingPrompt{}, fmt.Errorf("report %q has no assignee label", r.ID)
	}
	return schema.TrainingPrompt{
		ReportID: r.ID,
		Text:     FormatUserText(r),
		Assignee: r.Assignee,
	}, nil
}

// ToChatExample encodes a training prompt as the three-turn chat record the
// fine-tuning framework expects. The label appears only as the assistant turn.
func ToChatExample(p schema.TrainingPrompt) schema.ChatExample {
	return schema.ChatExample{
		Messages: []schema.ChatMessage{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: p.Text},
			{Role: "assistant", Content: p.Assignee},
		},
	}
}
