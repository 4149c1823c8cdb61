package shared

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_logger.go -package mocks notes_board/shared ILogger

// ILogger is the subset of charmbracelet/log's Logger that the service uses.
type ILogger interface {
	Printf(format string, args ...any)
	Debug(msg any, keyvals ...any)
	Debugf(format string, args ...any)
	Info(msg any, keyvals ...any)
	Infof(format string, args ...any)
	Warn(msg any, keyvals ...any)
	Warnf(format string, args ...any)
	Error(msg any, keyvals ...any)
	Errorf(format string, args ...any)
}
