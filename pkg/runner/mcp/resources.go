package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerGoalsResource(srv, svc)
	registerTodayResource(srv, svc)
	registerHistoryResource(srv, svc)
	registerSummaryResource(srv, svc)
	registerGoalTemplate(srv, svc)
}

func registerGoalsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"runlog://goals",
		"Goals",
		mcp.WithResourceDescription("Active running goals."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		goals, err := svc.ListGoals(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"goals": goals,
			"count": len(goals),
		})
	})
}

func registerTodayResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"runlog://runs/today",
		"Today's Runs",
		mcp.WithResourceDescription("Runs logged today."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		runs, err := svc.TodayRuns(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"runs":  runs,
			"count": len(runs),
		})
	})
}

func registerHistoryResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"runlog://history",
		"History",
		mcp.WithResourceDescription("Completed goals and past runs."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		history, err := svc.History(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, history)
	})
}

func registerSummaryResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"runlog://summary",
		"Summary",
		mcp.WithResourceDescription("Counts, mileage and the current streak."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		sum, err := svc.Summary(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, sum)
	})
}

func registerGoalTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"runlog://goals/{id}",
		"Goal Details",
		mcp.WithTemplateDescription("A single active goal."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id, _ := request.Params.Arguments["id"].(string)
		if id == "" {
			return nil, fmt.Errorf("goal id is required")
		}
		goal, err := svc.Goal(ctx, id)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"goal": goal,
		})
	})
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
