// Package logging configures the process-wide logrus logger: a colored
// console sink plus an optional timestamped file sink, mirroring a
// dual-sink setup_logger() that writes both to the terminal and to a
// per-run log file under logs/.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/segmentio/ksuid"
)

// Format selects the logrus formatter.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Options configures Setup.
type Options struct {
	Level     string // trace, debug, info, warn (default), error, fatal, panic
	Format    Format
	LogDir    string // directory for the per-run log file; "" disables the file sink
	NoColor   bool
	StampFunc func() time.Time // overridable for tests; nil selects time.Now
}

// Setup builds a *logrus.Logger per opts and returns it along with the path
// of the file sink it opened, if any. The file name embeds a ksuid so
// concurrent runs never collide, the same role the original tool's
// timestamp-suffixed log file name played.
func Setup(opts Options) (*log.Logger, string, error) {
	lg := log.New()

	switch opts.Level {
	case "trace":
		lg.SetLevel(log.TraceLevel)
	case "debug":
		lg.SetLevel(log.DebugLevel)
	case "info":
		lg.SetLevel(log.InfoLevel)
	case "error":
		lg.SetLevel(log.ErrorLevel)
	case "fatal":
		lg.SetLevel(log.FatalLevel)
	case "panic":
		lg.SetLevel(log.PanicLevel)
	default:
		lg.SetLevel(log.WarnLevel)
	}

	var formatter log.Formatter
	switch opts.Format {
	case FormatJSON:
		formatter = &log.JSONFormatter{}
	default:
		formatter = &log.TextFormatter{
			DisableColors: opts.NoColor,
			FullTimestamp: true,
		}
	}
	lg.SetFormatter(formatter)

	if opts.LogDir == "" {
		lg.SetOutput(os.Stdout)
		return lg, "", nil
	}

	if err := os.MkdirAll(opts.LogDir, 0o755); err != nil {
		lg.SetOutput(os.Stdout)
		return lg, "", fmt.Errorf("logging.Setup: mkdir %s: %w", opts.LogDir, err)
	}

	stamp := time.Now
	if opts.StampFunc != nil {
		stamp = opts.StampFunc
	}
	name := fmt.Sprintf("trace-%s-%s.log", stamp().Format("02-01-2006_15-04-05"), ksuid.New().String())
	path := filepath.Join(opts.LogDir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		lg.SetOutput(os.Stdout)
		return lg, "", fmt.Errorf("logging.Setup: open %s: %w", path, err)
	}

	lg.SetOutput(io.MultiWriter(os.Stdout, f))
	return lg, path, nil
}
