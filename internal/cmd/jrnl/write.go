package jrnlcmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tasleson/sdjournal"

	"github.com/tasleson/sdjournal/internal/config"
)

func newWriteCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "write MESSAGE...",
		Short: "Submit a structured entry to the journal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			priName, _ := cmd.Flags().GetString("priority")
			fieldArgs, _ := cmd.Flags().GetStringArray("field")

			pri, err := sdjournal.ParsePriority(priName)
			if err != nil {
				return err
			}
			vars, err := parseFieldVars(fieldArgs)
			if err != nil {
				return err
			}
			return sdjournal.Send(strings.Join(args, " "), pri, vars)
		},
	}
	cmd.Flags().String("priority", "info", "Syslog priority: emerg..debug or 0-7")
	cmd.Flags().StringArray("field", nil, "Extra FIELD=value to attach (repeatable)")
	return cmd
}

// parseFieldVars turns --field NAME=value arguments into a variable map.
func parseFieldVars(args []string) (map[string]string, error) {
	if len(args) == 0 {
		return nil, nil
	}
	vars := make(map[string]string, len(args))
	for _, a := range args {
		name, value, ok := strings.Cut(a, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("field %q is not of the form NAME=value", a)
		}
		if _, dup := vars[name]; dup {
			return nil, fmt.Errorf("field %q given more than once", name)
		}
		vars[name] = value
	}
	return vars, nil
}
