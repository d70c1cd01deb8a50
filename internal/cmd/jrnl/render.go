package jrnlcmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tasleson/sdjournal"
)

const (
	outputShort = "short"
	outputJSON  = "json"
)

type renderedEntry struct {
	Cursor       string            `json:"cursor"`
	RealtimeUsec uint64            `json:"realtime_usec"`
	Fields       map[string]string `json:"fields"`
}

// renderEntry formats one entry for the terminal in the requested format.
func renderEntry(e *sdjournal.Entry, output string) (string, error) {
	switch output {
	case outputJSON:
		b, err := json.Marshal(renderedEntry{
			Cursor:       e.Cursor,
			RealtimeUsec: e.RealtimeUsec,
			Fields:       e.Fields,
		})
		if err != nil {
			return "", err
		}
		return string(b), nil
	case "", outputShort:
		return renderShort(e), nil
	default:
		return "", fmt.Errorf("invalid output %q; use short|json", output)
	}
}

// renderShort approximates journalctl's default line:
// "Jun 01 12:30:00 host ident[pid]: message".
func renderShort(e *sdjournal.Entry) string {
	ident := e.Fields["SYSLOG_IDENTIFIER"]
	if ident == "" {
		ident = e.Fields["_COMM"]
	}
	if ident == "" {
		ident = "unknown"
	}
	if pid := e.Fields["_PID"]; pid != "" {
		ident += "[" + pid + "]"
	}

	var b strings.Builder
	b.WriteString(e.Realtime().Format("Jan 02 15:04:05"))
	if host := e.Fields["_HOSTNAME"]; host != "" {
		b.WriteByte(' ')
		b.WriteString(host)
	}
	b.WriteByte(' ')
	b.WriteString(ident)
	b.WriteString(": ")
	b.WriteString(e.Message())
	return b.String()
}
