package command

import "context"

// Message is the minimal view of an incoming chat message the dispatcher
// needs. Transport adapters map their own message types onto it.
type Message struct {
	ID      string
	ChatID  string
	Author  string
	Content string
}

// Gateway is the externally owned chat client: it delivers incoming
// messages and sends outgoing ones. The framework never manages the
// gateway's connection; it only binds a message callback to it.
type Gateway interface {
	// OnMessage registers a callback for every incoming message. The
	// gateway owns scheduling; callbacks may run concurrently.
	OnMessage(fn func(ctx context.Context, msg Message))

	// Send delivers text to a chat.
	Send(ctx context.Context, chatID, text string) error
}
