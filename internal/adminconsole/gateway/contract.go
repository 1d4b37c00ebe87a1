package gateway

// TokenSource supplies the bearer token attached to authenticated calls.
// Injected explicitly: the client never reaches into ambient storage.
type TokenSource interface {
	Token() (string, bool)
}

// Logger is the logging interface used by the client
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
