package schema

// ChatMessage is a single turn in a chat-format training example.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatExample is one JSONL record consumed by the fine-tuning framework.
type ChatExample struct {
	Messages []ChatMessage `json:"messages"`
}

// InferencePrompt is the formatted text shown to the model at evaluation time.
// It carries no assignee label anywhere; a report's label can only travel in a
// TrainingPrompt, which keeps leakage into model input impossible by type.
type InferencePrompt struct {
	ReportID string
	Text     string
}

// TrainingPrompt pairs the formatted text with the supervision label.
// The label is attached as the assistant turn when encoding to chat messages
// and never appears inside Text.
type TrainingPrompt struct {
	ReportID string
	Text     string
	Assignee string
}
