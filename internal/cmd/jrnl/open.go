package jrnlcmd

import (
	"fmt"

	"github.com/tasleson/sdjournal"

	"github.com/tasleson/sdjournal/internal/config"
)

// openJournal opens a handle according to the effective configuration:
// a journal directory when one is set, otherwise the machine journal
// restricted to the configured scope.
func openJournal(cfg config.Config) (*sdjournal.Journal, error) {
	if cfg.Directory != "" {
		return sdjournal.OpenDirectory(cfg.Directory, 0)
	}
	flags, err := scopeFlags(cfg.Scope)
	if err != nil {
		return nil, err
	}
	return sdjournal.Open(flags)
}

func scopeFlags(scope string) (sdjournal.OpenFlag, error) {
	switch scope {
	case "", "local":
		return sdjournal.LocalOnly, nil
	case "system":
		return sdjournal.LocalOnly | sdjournal.SystemOnly, nil
	case "user":
		return sdjournal.LocalOnly | sdjournal.CurrentUser, nil
	case "runtime":
		return sdjournal.LocalOnly | sdjournal.RuntimeOnly, nil
	default:
		return 0, fmt.Errorf("invalid scope %q; use local|system|user|runtime", scope)
	}
}
