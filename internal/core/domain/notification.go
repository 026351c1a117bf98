package domain

// Severity classifies a notification for display purposes.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Notification is the transient single-slot message shown to a session.
// At most one exists per session; a new one supersedes the current one.
type Notification struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}
