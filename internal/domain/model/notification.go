package model

// NotificationLevel classifies a status message.
type NotificationLevel string

const (
	LevelInfo    NotificationLevel = "info"
	LevelSuccess NotificationLevel = "success"
	LevelError   NotificationLevel = "error"
)

// Terminal reports whether the message closes an action (success or error)
// rather than describing one still in progress.
func (l NotificationLevel) Terminal() bool {
	return l == LevelSuccess || l == LevelError
}

// NotificationField represents a titled section within a notification payload.
type NotificationField struct {
	Name   string
	Value  string
	Inline bool
}

// Notification is a transport-agnostic status message for downstream notifiers.
type Notification struct {
	Level       NotificationLevel
	Title       string
	Description string
	Fields      []NotificationField
}
