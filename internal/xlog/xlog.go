// Package xlog provides the ambient logging layer shared by the chunked
// driver and the CLI. It follows the Options-with-embedded-Logger pattern
// (construct a default, let callers override it) rather than a global
// logger, so the parsing core never has hidden process-wide state.
package xlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Helper wraps a zerolog.Logger with the small, leveled call surface the
// parsing core needs: Debug for routine state-machine transitions (corrupt
// mode entered, a binary body skipped), Warn for recoverable but
// notable conditions, and Error for conditions the caller should see even
// without -v.
type Helper struct {
	log zerolog.Logger
}

// NewHelper wraps an already-configured zerolog.Logger.
func NewHelper(l zerolog.Logger) *Helper {
	return &Helper{log: l}
}

// NewStdHelper builds the default Helper: a console-formatted logger
// writing to w at level, suitable for CLI use. Default and the mkvdump
// command pass os.Stderr and zerolog.WarnLevel for ordinary runs.
func NewStdHelper(w io.Writer, level zerolog.Level) *Helper {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	l := zerolog.New(cw).Level(level).With().Timestamp().Logger()
	return &Helper{log: l}
}

// Default is the Helper used when an Options value leaves Logger unset:
// level Warn, writing to stderr.
func Default() *Helper {
	return NewStdHelper(os.Stderr, zerolog.WarnLevel)
}

// Debugf logs at debug level.
func (h *Helper) Debugf(format string, args ...any) {
	h.log.Debug().Msgf(format, args...)
}

// Warnf logs at warn level.
func (h *Helper) Warnf(format string, args ...any) {
	h.log.Warn().Msgf(format, args...)
}

// Errorf logs at error level.
func (h *Helper) Errorf(format string, args ...any) {
	h.log.Error().Msgf(format, args...)
}
