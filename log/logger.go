package log

import (
	"io"
	"sync"

	"github.com/finch-technologies/media-publisher/log/logstorage"
	"github.com/finch-technologies/media-publisher/log/zero"
	"github.com/rs/zerolog"
)

var initOnce sync.Once

// Init installs the default context logger. The log sink is optional; without
// LOG_STORAGE_DRIVER everything goes to stdout only.
func Init() {
	initOnce.Do(func() {
		zerolog.DefaultContextLogger = zero.New(nil, sink()).GetLogger()
	})
}

// New returns a logger carrying the exported fields of ctxFields (a struct) on every line.
func New(ctxFields any) LoggerInterface {
	Init()

	return zero.New(ctxFields, sink())
}

// SetOutput prints log lines to w instead of stdout. The log sink is kept.
// Loggers returned by New before the call keep writing where they did.
func SetOutput(w io.Writer) {
	Init()
	zero.SetConsole(w)

	z := zero.New(nil, sink())
	zerolog.DefaultContextLogger = z.GetLogger()
	logger = z
}

func sink() io.Writer {
	w, err := logstorage.GetSink()
	if err != nil {
		return nil
	}
	return w
}
