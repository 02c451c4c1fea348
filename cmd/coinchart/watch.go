package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"CoinChart/internal/dashboard"
	"CoinChart/internal/logger"
	"CoinChart/internal/scheduler"
)

const watchHelp = "commands: range <1d|3d|1w|1m|6m|1y|max>, tab <name>, fullscreen, compare, refresh, help, quit"

func newWatchCmd(opts *rootOptions) *cobra.Command {
	var cronSpec string
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Render the dashboard, refresh it on a schedule and accept commands on stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()
			if cronSpec == "" {
				cronSpec = a.cfg.Schedule.RefreshCron
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			s := &session{view: a.view, out: cmd.OutOrStdout()}
			sched := scheduler.NewScheduler(a.view.Controller(), logger.WithComponent(a.log, "scheduler"))
			sched.OnRefresh = s.draw
			if err := sched.Register(cronSpec); err != nil {
				return err
			}
			sched.Start()
			defer sched.Stop()

			a.log.WithField("cron", cronSpec).Info("watching; type 'help' for commands")
			s.draw()
			return s.run(ctx, cmd.InOrStdin())
		},
	}
	cmd.Flags().StringVar(&cronSpec, "cron", "", "refresh schedule with seconds field (default from config)")
	return cmd
}

// session serialises drawing between the command loop and the scheduler.
type session struct {
	mu   sync.Mutex
	view *dashboard.View
	out  io.Writer
}

func (s *session) draw() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.out, strings.Repeat("─", 60))
	if err := s.view.Render(s.out); err != nil {
		fmt.Fprintf(s.out, "render failed: %v\n", err)
	}
}

func (s *session) say(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, format+"\n", args...)
}

// run reads commands until quit, EOF or ctx is done.
func (s *session) run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if done := s.handle(line); done {
				return nil
			}
		}
	}
}

// handle executes one command line and reports whether the session should end.
func (s *session) handle(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit", "q":
		return true
	case "range", "r":
		if err := s.view.SelectRange(arg); err != nil {
			s.say("%v", err)
			return false
		}
	case "tab", "t":
		if err := s.view.SelectTab(arg); err != nil {
			s.say("%v", err)
			return false
		}
	case "fullscreen", "f":
		s.view.ToggleFullscreen()
	case "compare", "c":
		s.view.ToggleCompare()
	case "refresh":
		s.view.Controller().Refresh()
	case "help", "?":
		s.say(watchHelp)
		return false
	default:
		s.say("unknown command %q; %s", fields[0], watchHelp)
		return false
	}
	s.draw()
	return false
}
