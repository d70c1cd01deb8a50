package jrnlcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tasleson/sdjournal/internal/config"
)

func newFieldsCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields FIELD",
		Short: "List the distinct values a field takes across the journal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := openJournal(*cfg)
			if err != nil {
				return err
			}
			defer j.Close()

			values, err := j.GetUniqueValues(args[0])
			if err != nil {
				return err
			}
			for _, v := range values {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
	return cmd
}
