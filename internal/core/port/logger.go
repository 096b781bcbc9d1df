package port

// Fields carries structured key/value data attached to a log record.
type Fields map[string]interface{}

// LoggerPort abstracts the application core from the concrete logger implementation.
type LoggerPort interface {
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, err error, fields Fields)
	Debug(msg string, fields Fields)
	// WithFields returns a logger with the given fields pre-attached.
	WithFields(fields Fields) LoggerPort
}
