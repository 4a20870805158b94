package rate

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"io"
)

// NewLogger builds the logfmt logger shared by the commands, filtered to lvl
// (debug, info, warn or error; anything else means info).
func NewLogger(w io.Writer, lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	var allow level.Option
	switch lvl {
	case "debug":
		allow = level.AllowDebug()
	case "warn":
		allow = level.AllowWarn()
	case "error":
		allow = level.AllowError()
	default:
		allow = level.AllowInfo()
	}
	return level.NewFilter(logger, allow)
}
