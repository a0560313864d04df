package zero

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sync"
	"time"

	"github.com/finch-technologies/media-publisher/config/environment"
	"github.com/rs/zerolog"
)

var (
	consoleMu sync.RWMutex
	console   io.Writer = os.Stdout
)

type ZeroLogger struct {
	logger *zerolog.Logger
}

// SetConsole replaces stdout as the destination of loggers created afterwards.
func SetConsole(w io.Writer) {
	consoleMu.Lock()
	defer consoleMu.Unlock()

	console = w
}

func New(ctxFields any, sink io.Writer) *ZeroLogger {
	return NewWithWriter(ctxFields, output(sink))
}

// NewWithWriter builds a logger writing to w only.
func NewWithWriter(ctxFields any, w io.Writer) *ZeroLogger {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if os.Getenv("LOG_LEVEL") == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	loggerCtx := zerolog.New(w).With().Timestamp()

	if ctxFields != nil {
		for key, value := range getKeyValues(ctxFields) {
			if value != "" {
				loggerCtx = loggerCtx.Str(key, value)
			}
		}
	}

	logger := loggerCtx.Logger()

	return &ZeroLogger{logger: &logger}
}

func output(sink io.Writer) io.Writer {
	consoleMu.RLock()
	cw := console
	consoleMu.RUnlock()

	if environment.IsLocal() {
		cw = zerolog.ConsoleWriter{Out: cw, TimeFormat: time.DateTime}
	}

	if sink == nil {
		return cw
	}

	return io.MultiWriter(cw, sink)
}

func getKeyValues(ctx any) map[string]string {
	kvMap := make(map[string]string)

	v := reflect.ValueOf(ctx)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return kvMap
		}
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return kvMap
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		kvMap[field.Name] = fmt.Sprint(v.Field(i).Interface())
	}

	return kvMap
}

func (z *ZeroLogger) GetLogger() *zerolog.Logger {
	return z.logger
}

func (z *ZeroLogger) Debugf(s string, v ...any) {
	z.logger.Debug().Msg(fmt.Sprintf(s, v...))
}

func (z *ZeroLogger) Infof(s string, v ...any) {
	z.logger.Info().Msg(fmt.Sprintf(s, v...))
}

func (z *ZeroLogger) Errorf(s string, v ...any) {
	z.logger.Error().Msg(fmt.Sprintf(s, v...))
}

// DebugFields logs a debug level message with structured fields
func (z *ZeroLogger) DebugFields(msg string, fields map[string]any) {
	z.logger.Debug().Fields(fields).Msg(msg)
}

// ErrorFields logs an error level message with structured fields
func (z *ZeroLogger) ErrorFields(msg string, fields map[string]any) {
	z.logger.Error().Fields(fields).Msg(msg)
}
