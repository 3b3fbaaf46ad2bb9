package model

// Update represents an inbound update received from the messaging platform.
type Update struct {
	ID     int
	ChatID int64
	UserID int64

	// Exactly one of Message and Callback is set for updates the bot handles.
	Message  *Message
	Callback *Callback
}

// Message represents an inbound text message.
type Message struct {
	ID   int
	Text string
}

// Callback represents a pressed inline keyboard button.
type Callback struct {
	ID   string
	Data string
	// MessageID is the bot message that displayed the pressed button.
	MessageID int
}

// EventKind identifies what triggered an event.
type EventKind string

const (
	// EventText is a text message sent by user.
	EventText EventKind = "text"
	// EventCallback is a decoded callback command.
	EventCallback EventKind = "callback"
)

// Event represents an input of the conversation state machine.
type Event struct {
	Kind   EventKind
	ChatID int64
	UserID int64

	// MessageID is the inbound message for EventText and the message that
	// displayed the pressed button for EventCallback.
	MessageID int
	// Text is set for EventText.
	Text string
	// Command is set for EventCallback.
	Command Command
}

// TextEvent returns an event for an inbound text message.
func TextEvent(chatID, userID int64, messageID int, text string) Event {
	return Event{
		Kind:      EventText,
		ChatID:    chatID,
		UserID:    userID,
		MessageID: messageID,
		Text:      text,
	}
}

// CallbackEvent returns an event for a decoded callback command.
func CallbackEvent(chatID, userID int64, messageID int, command Command) Event {
	return Event{
		Kind:      EventCallback,
		ChatID:    chatID,
		UserID:    userID,
		MessageID: messageID,
		Command:   command,
	}
}
