package console

import "sync"

// Kind identifies which Presenter method produced a Message.
type Kind string

const (
	KindPrompt  Kind = "prompt"
	KindHeader  Kind = "header"
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Message is one recorded Presenter call.
type Message struct {
	Kind Kind
	Text string
}

// Recorder implements Presenter by storing every call, for unit tests.
type Recorder struct {
	mu       sync.Mutex
	messages []Message
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) add(kind Kind, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, Message{Kind: kind, Text: text})
}

func (r *Recorder) Prompt(text string)  { r.add(KindPrompt, text) }
func (r *Recorder) Header(title string) { r.add(KindHeader, title) }
func (r *Recorder) Info(msg string)     { r.add(KindInfo, msg) }
func (r *Recorder) Success(msg string)  { r.add(KindSuccess, msg) }
func (r *Recorder) Error(msg string)    { r.add(KindError, msg) }

// Messages returns a copy of everything recorded so far.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}

// Texts returns the text of every recorded message of the given kind, in order.
func (r *Recorder) Texts(kind Kind) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, m := range r.messages {
		if m.Kind == kind {
			out = append(out, m.Text)
		}
	}
	return out
}

// Reset discards recorded messages (useful between test steps).
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = nil
}

// Compile-time interface check
var _ Presenter = (*Recorder)(nil)
