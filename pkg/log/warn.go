package log

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/nbayes/pkg/errors"
)

// EnableZerologWarnings routes library warnings (ZeroVarianceWarning and
// friends) through a zerolog logger writing to w. Warning types that
// implement zerolog.LogObjectMarshaler are emitted as structured objects;
// anything else falls back to the error message.
func EnableZerologWarnings(w io.Writer) {
	logger := zerolog.New(w).With().Timestamp().Logger()
	errors.SetZerologWarnFunc(func(warning error) {
		event := logger.Warn()
		if marshaler, ok := warning.(zerolog.LogObjectMarshaler); ok {
			event.EmbedObject(marshaler).Msg("nbayes warning")
			return
		}
		event.Err(warning).Msg("nbayes warning")
	})
}
