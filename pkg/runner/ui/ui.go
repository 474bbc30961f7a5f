package ui

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"tableflip.dev/runlog/pkg/app"
	"tableflip.dev/runlog/pkg/logger"
	"tableflip.dev/runlog/pkg/tui"
)

type UI struct {
	Service *app.Service

	// LogLevel and LogFile configure logging while the interface owns the
	// terminal. Nothing is written to stderr; LogFile, when set, gets every
	// record.
	LogLevel string
	LogFile  string
}

func (d *UI) Do(ctx context.Context) error {
	if d.Service == nil {
		return errors.New("can not start ui, no service")
	}
	restore, err := d.redirectLogs()
	if err != nil {
		return err
	}
	defer restore()

	if d.Service.Journal == nil {
		slog.Debug("ui running without a journal, nothing will be saved")
	}
	return tui.Run(d.Service)
}

// redirectLogs swaps the default logger for one that never touches the
// terminal. The returned func puts the previous logger back.
func (d *UI) redirectLogs() (restore func(), err error) {
	prev := slog.Default()
	closeFn, err := logger.Init(io.Discard, d.LogLevel, d.LogFile)
	if err != nil {
		return func() {}, err
	}
	return func() {
		_ = closeFn()
		logger.Log = prev
		slog.SetDefault(prev)
	}, nil
}
