package jrnlcmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tasleson/sdjournal"

	"github.com/tasleson/sdjournal/internal/config"
	"github.com/tasleson/sdjournal/internal/filter"
	"github.com/tasleson/sdjournal/internal/follow"
	"github.com/tasleson/sdjournal/pkg/log"
)

// writerSink renders entries to a terminal or pipe.
type writerSink struct {
	w      io.Writer
	output string
}

func (s writerSink) Send(e *sdjournal.Entry) error {
	line, err := renderEntry(e, s.output)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.w, line)
	return err
}

func (s writerSink) Flush() error { return nil }

func newFollowCommand(cfg *config.Config, logger *log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "follow",
		Short: "Stream new journal entries as they arrive",
		Long: "Stream new journal entries as they arrive, like journalctl -f.\n" +
			"With --cursor-file the stream resumes where the previous run stopped.",
		RunE: func(cmd *cobra.Command, args []string) error {
			filterExpr, _ := cmd.Flags().GetString("filter")
			output, _ := cmd.Flags().GetString("output")
			cursorFile, _ := cmd.Flags().GetString("cursor-file")
			matches, _ := cmd.Flags().GetStringArray("match")
			if output == "" {
				output = cfg.Output
			}
			if cursorFile == "" {
				cursorFile = cfg.CursorFile
			}
			if cursorFile != "" {
				if err := os.MkdirAll(filepath.Dir(cursorFile), 0o755); err != nil {
					return err
				}
			}

			fl, err := filter.New(filterExpr)
			if err != nil {
				return fmt.Errorf("bad filter expression: %w", err)
			}

			j, err := openJournal(*cfg)
			if err != nil {
				return err
			}
			defer j.Close()
			for _, m := range matches {
				if err := j.AddMatch(m); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			f := follow.New(j, follow.Options{
				Match:        fl.Match,
				CursorPath:   cursorFile,
				PollInterval: time.Duration(cfg.PollIntervalMs) * time.Millisecond,
				Logger:       logger.WithComponent("follow"),
			})
			err = f.Run(ctx, writerSink{w: cmd.OutOrStdout(), output: output})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().String("filter", "", "CEL filter expression, e.g. 'priority <= 3'")
	cmd.Flags().String("output", "", "Output format: short|json")
	cmd.Flags().String("cursor-file", "", "Persist/resume position in this file")
	cmd.Flags().StringArray("match", nil, "Exact FIELD=value match (repeatable)")
	return cmd
}
