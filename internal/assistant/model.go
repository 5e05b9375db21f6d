// README: Assistant message/reply model and sentinel errors.
package assistant

import (
	"errors"
	"time"

	"menuboard/internal/catalog"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptyMessage    = errors.New("empty message")
)

type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// Reply is one assistant answer: the text body plus the items rendered as
// cards under it. Recommendations is nil when the answer carries none.
type Reply struct {
	Text            string         `json:"text"`
	Recommendations []catalog.Item `json:"recommendations,omitempty"`
}

// Message is one entry of a conversation session.
type Message struct {
	ID              string         `json:"id"`
	Speaker         Speaker        `json:"speaker"`
	Text            string         `json:"text"`
	Recommendations []catalog.Item `json:"recommendations,omitempty"`
	Timestamp       time.Time      `json:"timestamp"`
}
