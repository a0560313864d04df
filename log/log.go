package log

var logger LoggerInterface = New(nil)

func Debugf(s string, v ...any) {
	logger.Debugf(s, v...)
}

func Infof(s string, v ...any) {
	logger.Infof(s, v...)
}

func Errorf(s string, v ...any) {
	logger.Errorf(s, v...)
}

// ErrorFields logs an error level message with structured fields
func ErrorFields(msg string, fields map[string]any) {
	logger.ErrorFields(msg, fields)
}
