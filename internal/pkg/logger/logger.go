package logger

// Logger is the logging port used by the processors and the signature test runner.
// Messages are built from args the way fmt.Sprint joins them.
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})

	// With returns a Logger that adds the key/value pairs to every entry, e.g. With("run_id", id).
	With(keyValues ...interface{}) Logger
}
