package systems

// DefaultMaxMessages is how many lines a new MessageLog keeps
const DefaultMaxMessages = 100

// MessageLog stores recent game messages for the debug overlay
type MessageLog struct {
	Messages    []ColoredMessage
	MaxMessages int
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Messages:    []ColoredMessage{},
		MaxMessages: DefaultMaxMessages,
	}
}

// Add adds a normal message to the log
func (ml *MessageLog) Add(message string) {
	ml.AddTyped(MessageTypeNormal, message)
}

// AddAlert adds an alert message to the log
func (ml *MessageLog) AddAlert(message string) {
	ml.AddTyped(MessageTypeAlert, message)
}

// AddTyped adds a message with the given type
func (ml *MessageLog) AddTyped(t MessageType, message string) {
	ml.Messages = append(ml.Messages, ColoredMessage{Text: message, Type: t})

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []ColoredMessage{}
}
