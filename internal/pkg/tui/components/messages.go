package components

import "github.com/endorses/lippyphone/internal/pkg/directory"

// DialRequestMsg asks the application to start a call
type DialRequestMsg struct {
	Number string
	// Name and Avatar are optional; the application resolves the caller
	// through the directory when Name is empty.
	Name   string
	Avatar string
}

// PlayRecordingMsg asks the application to play a call recording
type PlayRecordingMsg struct {
	Contact   directory.Contact
	Recording directory.Recording
}

// SettingChangedMsg reports a setting edited in the settings view. Key is
// the configuration key (e.g. "tui.theme").
type SettingChangedMsg struct {
	Key   string
	Value any
}

// MessageSentMsg reports a chat message appended to a conversation
type MessageSentMsg struct {
	ConversationID string
	Message        directory.Message
}
