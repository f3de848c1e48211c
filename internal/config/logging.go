package config

import (
	"github.com/rshade/roster/internal/logging"
)

// ToLoggingConfig converts the logging section into a logging.Config.
//
// The conversion applies these rules:
//   - Level and Format are copied directly
//   - If File is set, Output becomes "file"
//   - Otherwise output goes to stderr, or is discarded when interactive is
//     true so log lines do not corrupt the terminal UI
func (lc LoggingConfig) ToLoggingConfig(interactive bool) logging.Config {
	output := logging.OutputStderr
	switch {
	case lc.File != "":
		output = logging.OutputFile
	case interactive:
		output = logging.OutputDiscard
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}
