package log

import (
	"io"

	"github.com/rs/zerolog"

	moerrors "github.com/Vacek-Ace/moe/pkg/errors"
)

// InstallZerologWarnings routes library warnings (see pkg/errors.Warn)
// through a zerolog logger writing to w. Warning types implementing
// zerolog.LogObjectMarshaler are emitted with their structured fields.
func InstallZerologWarnings(w io.Writer) {
	logger := zerolog.New(w).With().Timestamp().Logger()
	moerrors.SetZerologWarnFunc(func(warning error) {
		event := logger.Warn()
		if marshaler, ok := warning.(zerolog.LogObjectMarshaler); ok {
			event.EmbedObject(marshaler).Msg(warning.Error())
			return
		}
		event.Err(warning).Msg("library warning")
	})
}
