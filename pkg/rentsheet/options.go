// Package rentsheet converts rental listing workbooks into normalized listings.
package rentsheet

import "log/slog"

// Options configures conversion behavior.
type Options struct {
	// Sheet is the sheet to read. If empty, the workbook's active sheet is used.
	Sheet string
	// Logger receives progress messages. If nil, messages are discarded.
	Logger *slog.Logger
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}
