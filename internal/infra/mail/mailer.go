package mail

import "context"

// Message is one outbound plain-text mail.
type Message struct {
	To      string
	Subject string
	Text    string
}

// Mailer hands a message to the transactional-email collaborator. Sends are
// single-attempt, best-effort: callers downgrade failures to a result flag
// instead of failing the parent request.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
