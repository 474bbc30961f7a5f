// Package mcp provides the Model Context Protocol server integration for runlog.
package mcp

import (
	"context"
	"errors"
	"strings"
	"sync"

	"tableflip.dev/runlog/pkg/app"
	"tableflip.dev/runlog/pkg/entry"
	"tableflip.dev/runlog/pkg/timeutil"
	"tableflip.dev/runlog/pkg/tracker"
)

// Service serializes MCP requests onto a single app.Service. The stores are
// not safe for concurrent use and the HTTP transport handles requests in
// parallel.
type Service struct {
	mu  sync.Mutex
	app *app.Service
}

// AddGoalOptions captures the parameters used to create a new goal.
type AddGoalOptions struct {
	Kind   string
	Fields entry.Fields
}

// LogRunOptions captures the parameters used to log a run. Pace, Duration and
// Date use the same formats as the command line.
type LogRunOptions struct {
	Name     string
	Miles    float64
	Pace     string
	Duration string
	Date     string
}

// LoggedRun reports where a logged run was placed.
type LoggedRun struct {
	Run       entry.Run `json:"run"`
	Placement string    `json:"placement"`
}

// HistoryDTO groups the history store.
type HistoryDTO struct {
	CompletedGoals []entry.CompletedGoal `json:"completedGoals"`
	Runs           []entry.Run           `json:"runs"`
}

// SummaryDTO is a transport-friendly projection of tracker.Summary.
type SummaryDTO struct {
	ActiveGoals    int     `json:"activeGoals"`
	CompletedGoals int     `json:"completedGoals"`
	TodayRuns      int     `json:"todayRuns"`
	TodayMiles     float64 `json:"todayMiles"`
	TotalRuns      int     `json:"totalRuns"`
	TotalMiles     float64 `json:"totalMiles"`
	Streak         int     `json:"streak"`
}

// NewService builds a service wrapper around the provided app service.
func NewService(a *app.Service) *Service {
	return &Service{app: a}
}

func (s *Service) ready() error {
	if s == nil || s.app == nil {
		return errors.New("mcp: service is not configured")
	}
	return nil
}

// ListGoals returns the active goals.
func (s *Service) ListGoals(ctx context.Context) ([]entry.Goal, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.app.Goals(ctx), nil
}

// Goal looks up an active goal by id or unique id prefix.
func (s *Service) Goal(_ context.Context, ref string) (entry.Goal, error) {
	if err := s.ready(); err != nil {
		return entry.Goal{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.app.ResolveGoal(ref)
}

// AddGoal creates a goal of the requested kind.
func (s *Service) AddGoal(ctx context.Context, opts AddGoalOptions) (entry.Goal, error) {
	if err := s.ready(); err != nil {
		return entry.Goal{}, err
	}
	kind, err := entry.ParseKind(opts.Kind)
	if err != nil {
		return entry.Goal{}, err
	}
	if strings.TrimSpace(opts.Fields.Name) == "" {
		return entry.Goal{}, errors.New("name is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.app.AddGoal(ctx, kind, opts.Fields)
}

// CompleteGoal moves a goal into history.
func (s *Service) CompleteGoal(ctx context.Context, ref string) (entry.CompletedGoal, error) {
	if err := s.ready(); err != nil {
		return entry.CompletedGoal{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.app.CompleteGoal(ctx, ref)
}

// DeleteGoal removes a goal without recording it.
func (s *Service) DeleteGoal(ctx context.Context, ref string) (entry.Goal, error) {
	if err := s.ready(); err != nil {
		return entry.Goal{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.app.DeleteGoal(ctx, ref)
}

// LogRun parses opts into a run and logs it. Runs dated on any day but today
// land in history.
func (s *Service) LogRun(ctx context.Context, opts LogRunOptions) (LoggedRun, error) {
	if err := s.ready(); err != nil {
		return LoggedRun{}, err
	}
	name := strings.TrimSpace(opts.Name)
	if name == "" {
		return LoggedRun{}, errors.New("name is required")
	}
	if opts.Miles < 0 {
		return LoggedRun{}, errors.New("miles must not be negative")
	}
	pace, err := timeutil.ParseTime(opts.Pace)
	if err != nil {
		return LoggedRun{}, err
	}
	duration, err := timeutil.ParseTime(opts.Duration)
	if err != nil {
		return LoggedRun{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r := entry.NewRun(name, opts.Miles, pace, duration)
	now := s.app.Tracker.Now()
	if strings.TrimSpace(opts.Date) == "" {
		r.Date = entry.Timestamp{Time: now}
	} else {
		day, err := timeutil.ParseDay(opts.Date, now)
		if err != nil {
			return LoggedRun{}, err
		}
		r.Date = entry.Timestamp{Time: day}
	}

	placement, err := s.app.LogRun(ctx, r)
	if err != nil {
		return LoggedRun{}, err
	}
	return LoggedRun{Run: r, Placement: placement.String()}, nil
}

// TodayRuns returns the runs logged for today.
func (s *Service) TodayRuns(ctx context.Context) ([]entry.Run, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.app.TodayRuns(ctx), nil
}

// DeleteRun removes a run from the run store.
func (s *Service) DeleteRun(ctx context.Context, ref string) (entry.Run, error) {
	if err := s.ready(); err != nil {
		return entry.Run{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.app.DeleteRun(ctx, ref)
}

// History returns the completed goals and past runs.
func (s *Service) History(ctx context.Context) (HistoryDTO, error) {
	if err := s.ready(); err != nil {
		return HistoryDTO{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	completed, runs := s.app.History(ctx)
	return HistoryDTO{CompletedGoals: completed, Runs: runs}, nil
}

// Summary returns the at-a-glance counts and streak.
func (s *Service) Summary(ctx context.Context) (SummaryDTO, error) {
	if err := s.ready(); err != nil {
		return SummaryDTO{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return toSummaryDTO(s.app.Summary(ctx)), nil
}

func toSummaryDTO(sum tracker.Summary) SummaryDTO {
	return SummaryDTO{
		ActiveGoals:    sum.ActiveGoals,
		CompletedGoals: sum.CompletedGoals,
		TodayRuns:      sum.TodayRuns,
		TodayMiles:     sum.TodayMiles,
		TotalRuns:      sum.TotalRuns,
		TotalMiles:     sum.TotalMiles,
		Streak:         sum.Streak,
	}
}
