package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/runlog/pkg/commands/options"
	"tableflip.dev/runlog/pkg/entry"
	"tableflip.dev/runlog/pkg/runner/goal"
)

func addGoal(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "goal",
		Aliases: []string{"goals"},
		Short:   base.Wrap80("Manage running goals."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addGoalAdd(cmd)
	addGoalList(cmd)
	addGoalComplete(cmd)
	addGoalDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addGoalAdd(parent *cobra.Command) {
	gf := &options.GoalOptions{}
	io := &options.IDOptions{}
	var kind entry.Kind
	var name string

	kinds := make([]string, 0, len(entry.AllKinds()))
	for _, k := range entry.AllKinds() {
		kinds = append(kinds, string(k))
	}

	cmd := &cobra.Command{
		Use:       "add <kind> <name>",
		Short:     base.Wrap80(fmt.Sprintf("Add a goal. Kind is one of %s.", strings.Join(kinds, ", "))),
		ValidArgs: kinds,
		Example: `
runlog goal add duration "Long run" --hours 1 --minutes 30
runlog goal add mile "Faster mile" --pace-minutes 8
runlog goal add distance 5K --miles 3 --fraction 0.1
runlog goal add sprint "Quick 400" --fraction 0.2 --pace-minutes 6
runlog goal add custom Half --miles 13 --fraction 0.1 --pace-minutes 9 --hours 2
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a goal kind and a name")
			}
			k, err := entry.ParseKind(args[0])
			if err != nil {
				return err
			}
			kind = k
			name = strings.Join(args[1:], " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, err := openService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			defer svc.Close()
			s := goal.Add{
				Kind:    kind,
				Fields:  gf.Fields(name),
				ShowID:  io.ShowID,
				JSON:    output.JSON,
				Service: svc,
			}
			return output.HandleError(s.Do(ctx))
		},
	}

	options.AddGoalArgs(cmd, gf)
	options.AddShowIDArgs(cmd, io)
	parent.AddCommand(cmd)
}

func addGoalList(parent *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List active goals.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, err := openService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			defer svc.Close()
			s := goal.List{
				ShowID:  io.ShowID,
				JSON:    output.JSON,
				Service: svc,
			}
			return output.HandleError(s.Do(ctx))
		},
	}

	options.AddShowIDArgs(cmd, io)
	parent.AddCommand(cmd)
}

func addGoalComplete(parent *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "complete <goal id>",
		Aliases: []string{"done"},
		Short:   base.Wrap80("Complete a goal and move it into history. A unique id prefix is enough."),
		Example: `
runlog goal list -k
runlog goal complete 1a2b3c4d
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a goal id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, err := openService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			defer svc.Close()
			s := goal.Complete{
				ID:      io.ID,
				JSON:    output.JSON,
				Service: svc,
			}
			return output.HandleError(s.Do(ctx))
		},
	}

	parent.AddCommand(cmd)
}

func addGoalDelete(parent *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "delete <goal id>",
		Aliases: []string{"rm"},
		Short:   base.Wrap80("Delete a goal without recording it in history."),
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a goal id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, err := openService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			defer svc.Close()
			s := goal.Delete{
				ID:      io.ID,
				JSON:    output.JSON,
				Service: svc,
			}
			return output.HandleError(s.Do(ctx))
		},
	}

	parent.AddCommand(cmd)
}
