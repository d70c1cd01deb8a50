package jrnlcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tasleson/sdjournal"

	"github.com/tasleson/sdjournal/internal/config"
	"github.com/tasleson/sdjournal/internal/filter"
	"github.com/tasleson/sdjournal/pkg/log"
)

func newReadCommand(cfg *config.Config, logger *log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read",
		Short: "Read a range of journal entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			cursor, _ := cmd.Flags().GetString("cursor")
			reverse, _ := cmd.Flags().GetBool("reverse")
			filterExpr, _ := cmd.Flags().GetString("filter")
			output, _ := cmd.Flags().GetString("output")
			matches, _ := cmd.Flags().GetStringArray("match")
			if limit <= 0 {
				limit = cfg.DefaultLimit
			}
			if output == "" {
				output = cfg.Output
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

			includeCurrent, err := position(j, cursor, reverse)
			if err != nil {
				return err
			}

			advance := j.Next
			if reverse {
				advance = j.Previous
			}
			printed := 0
			last := ""
			emit := func(e *sdjournal.Entry) error {
				last = e.Cursor
				if !fl.Match(e) {
					return nil
				}
				line, err := renderEntry(e, output)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
				printed++
				return nil
			}
			if includeCurrent {
				e, err := j.GetEntry()
				if err != nil {
					return err
				}
				if err := emit(e); err != nil {
					return err
				}
			}
			for printed < limit {
				n, err := advance()
				if err != nil {
					return err
				}
				if n == 0 {
					break
				}
				e, err := j.GetEntry()
				if err != nil {
					return err
				}
				if err := emit(e); err != nil {
					return err
				}
			}
			if last != "" {
				logger.Debug("read finished", log.Int("entries", printed), log.String("cursor", last))
			}
			return nil
		},
	}
	cmd.Flags().Int("limit", 0, "Maximum entries to print (default from config)")
	cmd.Flags().String("cursor", "", "Start after (forward) or before (reverse) this cursor")
	cmd.Flags().Bool("reverse", false, "Read newest entries first")
	cmd.Flags().String("filter", "", "CEL filter expression, e.g. 'priority <= 3'")
	cmd.Flags().String("output", "", "Output format: short|json")
	cmd.Flags().StringArray("match", nil, "Exact FIELD=value match (repeatable)")
	return cmd
}

// positioner is the slice of the binding position needs. *sdjournal.Journal
// satisfies it; tests substitute a fake.
type positioner interface {
	SeekHead() error
	SeekTail() error
	SeekCursor(cursor string) error
	Next() (uint64, error)
	TestCursor(cursor string) (bool, error)
}

// position places the read cursor so the first advance lands on the first
// entry of the requested range. includeCurrent reports that the position
// already holds an entry the caller must consume before advancing: the
// saved cursor entry was rotated away and a survivor took its place.
func position(j positioner, cursor string, reverse bool) (includeCurrent bool, err error) {
	switch {
	case cursor == "" && reverse:
		return false, j.SeekTail()
	case cursor == "":
		return false, j.SeekHead()
	case reverse:
		// Previous from a seeked cursor lands on the entry before it.
		return false, j.SeekCursor(cursor)
	default:
		if err := j.SeekCursor(cursor); err != nil {
			return false, err
		}
		// Next lands on the cursor entry itself, which belongs to the
		// previous page and is skipped. If it was rotated away the
		// position holds the nearest survivor, which must not be lost.
		n, err := j.Next()
		if err != nil {
			return false, err
		}
		if n == 0 {
			return false, nil
		}
		same, err := j.TestCursor(cursor)
		if err != nil {
			return false, err
		}
		return !same, nil
	}
}
