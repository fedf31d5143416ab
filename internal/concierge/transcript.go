package concierge

import "sync"

// Role marks who authored a transcript message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Greeting opens every new transcript.
const Greeting = "Hello! I am your Luxury Concierge. How can I help you find something exquisite today?"

// Message is one turn of the conversation.
type Message struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Transcript holds one shopper's conversation with the concierge. At most one
// reply is composed at a time per transcript. It is safe for concurrent use.
type Transcript struct {
	mu       sync.Mutex
	messages []Message
	awaiting bool
}

// NewTranscript returns a transcript seeded with the greeting.
func NewTranscript() *Transcript {
	return &Transcript{
		messages: []Message{{Role: RoleModel, Text: Greeting}},
	}
}

// Messages returns a copy of the conversation so far.
func (t *Transcript) Messages() []Message {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Append adds a message to the transcript.
func (t *Transcript) Append(msg Message) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, msg)
}

// TryBegin claims the in-flight slot. It returns false when a reply is already
// being composed.
func (t *Transcript) TryBegin() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.awaiting {
		return false
	}
	t.awaiting = true
	return true
}

// End releases the in-flight slot.
func (t *Transcript) End() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.awaiting = false
}

// Awaiting reports whether a reply is currently being composed.
func (t *Transcript) Awaiting() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.awaiting
}
