package core

// Logger interface for render progress and stats output
type Logger interface {
	Printf(format string, args ...interface{})
}
