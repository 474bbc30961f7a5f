package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/runlog/pkg/entry"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerAddGoalTool(srv, svc)
	registerCompleteGoalTool(srv, svc)
	registerDeleteGoalTool(srv, svc)
	registerListGoalsTool(srv, svc)
	registerLogRunTool(srv, svc)
	registerListRunsTool(srv, svc)
	registerDeleteRunTool(srv, svc)
	registerHistoryTool(srv, svc)
	registerSummaryTool(srv, svc)
}

func kindNames() []string {
	kinds := entry.AllKinds()
	out := make([]string, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, string(k))
	}
	return out
}

func registerAddGoalTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_goal",
		mcp.WithDescription("Create a running goal. The kind decides which targets are kept."),
		mcp.WithString("kind",
			mcp.Required(),
			mcp.Description("Goal kind: duration, mile, distance, sprint or custom."),
			mcp.Enum(kindNames()...),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the goal."),
		),
		mcp.WithNumber("miles", mcp.Description("Whole miles, 0 to 100.")),
		mcp.WithNumber("fraction", mcp.Description("Tenths of a mile, 0.0 to 0.9.")),
		mcp.WithNumber("pace_hours", mcp.Description("Pace per mile hours.")),
		mcp.WithNumber("pace_minutes", mcp.Description("Pace per mile minutes.")),
		mcp.WithNumber("hours", mcp.Description("Duration hours.")),
		mcp.WithNumber("minutes", mcp.Description("Duration minutes.")),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Kind        string  `json:"kind"`
			Name        string  `json:"name"`
			Miles       float64 `json:"miles"`
			Fraction    float64 `json:"fraction"`
			PaceHours   float64 `json:"pace_hours"`
			PaceMinutes float64 `json:"pace_minutes"`
			Hours       float64 `json:"hours"`
			Minutes     float64 `json:"minutes"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		goal, err := svc.AddGoal(ctx, AddGoalOptions{
			Kind: args.Kind,
			Fields: entry.Fields{
				Name:            args.Name,
				Miles:           int(args.Miles),
				Fraction:        args.Fraction,
				PaceHours:       int(args.PaceHours),
				PaceMinutes:     int(args.PaceMinutes),
				DurationHours:   int(args.Hours),
				DurationMinutes: int(args.Minutes),
			},
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(goal)
	})
}

func registerCompleteGoalTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"complete_goal",
		mcp.WithDescription("Mark a goal as completed and move it into history."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Goal identifier or unique prefix."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		done, err := svc.CompleteGoal(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(done)
	})
}

func registerDeleteGoalTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_goal",
		mcp.WithDescription("Delete a goal without recording it in history."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Goal identifier or unique prefix."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		goal, err := svc.DeleteGoal(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(goal)
	})
}

func registerListGoalsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_goals",
		mcp.WithDescription("List the active goals in insertion order."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		goals, err := svc.ListGoals(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"goals": goals,
			"count": len(goals),
		})
	})
}

func registerLogRunTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"log_run",
		mcp.WithDescription("Log a run. Runs dated on any day but today are stored in history."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the run."),
		),
		mcp.WithNumber("miles", mcp.Description("Distance in miles.")),
		mcp.WithString("pace", mcp.Description("Pace per mile such as 8:30 or 8m30s.")),
		mcp.WithString("duration", mcp.Description("Duration such as 26:21 or 1h5m.")),
		mcp.WithString("date", mcp.Description("today, yesterday, YYYY-M-D or M/D. Defaults to now.")),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Name     string  `json:"name"`
			Miles    float64 `json:"miles"`
			Pace     string  `json:"pace"`
			Duration string  `json:"duration"`
			Date     string  `json:"date"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		logged, err := svc.LogRun(ctx, LogRunOptions{
			Name:     args.Name,
			Miles:    args.Miles,
			Pace:     args.Pace,
			Duration: args.Duration,
			Date:     args.Date,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(logged)
	})
}

func registerListRunsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_runs",
		mcp.WithDescription("List the runs logged today."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		runs, err := svc.TodayRuns(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"runs":  runs,
			"count": len(runs),
		})
	})
}

func registerDeleteRunTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_run",
		mcp.WithDescription("Delete one of today's runs. History is never edited."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Run identifier or unique prefix."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		run, err := svc.DeleteRun(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(run)
	})
}

func registerHistoryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_history",
		mcp.WithDescription("Return completed goals and past runs."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		history, err := svc.History(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(history)
	})
}

func registerSummaryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_summary",
		mcp.WithDescription("Return goal and run counts, mileage and the current streak."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sum, err := svc.Summary(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(sum)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
