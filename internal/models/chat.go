package models

type ChatMode string

const (
	ChatModeTeam      ChatMode = "team"
	ChatModeAssistant ChatMode = "assistant"
)

type Sender string

const (
	SenderUser      Sender = "user"
	SenderTeam      Sender = "team"
	SenderAssistant Sender = "assistant"
)

type Message struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Sender      Sender `json:"sender"`
	DisplayName string `json:"display_name,omitempty"`
	Timestamp   string `json:"timestamp"` // HH:MM
	// Pending marks a message typed locally that no backend has accepted yet.
	Pending bool `json:"pending,omitempty"`
}
