package domain

// MessageKind classifies a diagnostic message.
type MessageKind string

const (
	MessagePrint MessageKind = "print" // Output printed by the test body
	MessageSkip  MessageKind = "skip"  // A skip notice, Text holds the reason
)

// Message is an opaque diagnostic payload emitted while a test runs.
type Message struct {
	Kind MessageKind
	Text string
}

// PrintMessage builds a print-output message.
func PrintMessage(text string) Message {
	return Message{Kind: MessagePrint, Text: text}
}

// SkipMessage builds a skip-notice message.
func SkipMessage(reason string) Message {
	return Message{Kind: MessageSkip, Text: reason}
}
