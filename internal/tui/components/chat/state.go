package chat

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/julianstephens/onetake/internal/models"
)

// State is the chat screen view-model. Threads are append only and keyed
// by mode; handlers return a new State that shares nothing mutable with
// the receiver.
type State struct {
	Mode    models.ChatMode
	Draft   string
	Threads map[models.ChatMode][]models.Message
}

func NewState(team, assistant []models.Message) State {
	return State{
		Mode: models.ChatModeTeam,
		Threads: map[models.ChatMode][]models.Message{
			models.ChatModeTeam:      slices.Clone(team),
			models.ChatModeAssistant: slices.Clone(assistant),
		},
	}
}

// Thread returns the messages of the active mode.
func (s State) Thread() []models.Message {
	return s.Threads[s.Mode]
}

// SelectMode switches the visible thread. The draft is left alone.
func (s State) SelectMode(mode models.ChatMode) State {
	s.Mode = mode
	return s
}

// ChangeDraft replaces the draft verbatim.
func (s State) ChangeDraft(text string) State {
	s.Draft = text
	return s
}

// Send appends the draft to the active thread as a pending user message
// and clears it. A blank draft sends nothing and ok is false.
func (s State) Send(id string, now time.Time) (next State, msg models.Message, ok bool) {
	text := strings.TrimSpace(s.Draft)
	if text == "" {
		return s, models.Message{}, false
	}

	msg = models.Message{
		ID:        id,
		Text:      text,
		Sender:    models.SenderUser,
		Timestamp: now.Format("15:04"),
		Pending:   true,
	}

	threads := maps.Clone(s.Threads)
	if threads == nil {
		threads = make(map[models.ChatMode][]models.Message)
	}
	threads[s.Mode] = append(slices.Clip(threads[s.Mode]), msg)

	s.Threads = threads
	s.Draft = ""
	return s, msg, true
}
