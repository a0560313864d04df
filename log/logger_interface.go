package log

type LoggerInterface interface {
	Debugf(s string, v ...any)
	Infof(s string, v ...any)
	Errorf(s string, v ...any)
	DebugFields(msg string, fields map[string]any)
	ErrorFields(msg string, fields map[string]any)
}
