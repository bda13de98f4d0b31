package core

// Logger is any service that can log messages at increasing levels of severity.
// Implementations may inspect args for known domain types (eg. lead.Lead) to
// enrich reports.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
