// Package log provides a zerolog-backed sink for library warnings.
//
// The errors package exposes SetZerologWarnFunc so that warnings raised
// through errors.Warn can be routed to a structured zerolog logger without
// creating an import cycle. This file supplies the standard implementation
// of that hook.

package log

import (
	"io"

	"github.com/rs/zerolog"
)

// NewZerologWarnFunc returns a warning sink that writes each warning as a
// structured zerolog event to w. Warning types implementing
// zerolog.LogObjectMarshaler (such as errors.DeprecationWarning) are
// embedded as a structured "warning" object; other errors fall back to
// their message string.
//
// Typical wiring at program start:
//
//	errors.SetZerologWarnFunc(log.NewZerologWarnFunc(os.Stderr))
func NewZerologWarnFunc(w io.Writer) func(warning error) {
	logger := zerolog.New(w).With().Timestamp().Logger()
	return func(warning error) {
		event := logger.Warn()
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			event = event.Object("warning", obj)
		} else {
			event = event.Str("warning", warning.Error())
		}
		event.Msg(warning.Error())
	}
}
