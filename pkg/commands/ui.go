package commands

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/runlog/pkg/app"
	"tableflip.dev/runlog/pkg/commands/options"
	"tableflip.dev/runlog/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	uo := &options.UIOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the terminal user interface",
		Example: `
runlog ui
runlog ui --ephemeral
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return errors.New("ui requires an interactive terminal")
			}
			ctx := context.Background()
			var (
				svc *app.Service
				err error
			)
			if uo.Ephemeral {
				svc, err = app.Open(ctx, nil)
			} else {
				svc, err = openService(ctx)
			}
			if err != nil {
				return err
			}
			defer svc.Close()
			i := ui.UI{
				Service:  svc,
				LogLevel: config.LogLevel(),
				LogFile:  config.LogFile(),
			}
			return i.Do(ctx)
		},
	}

	options.AddUIArgs(cmd, uo)
	topLevel.AddCommand(cmd)
}
