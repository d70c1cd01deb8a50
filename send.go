package sdjournal

/*
#cgo LDFLAGS: -lsystemd
#include <stdlib.h>
#include <systemd/sd-journal.h>
*/
import "C"

import (
	"fmt"
	"strings"
	"unsafe"
)

// Priority is a syslog severity level, PRIORITY=0 (emergency) through
// PRIORITY=7 (debug).
type Priority int

// Syslog priorities.
const (
	PriEmerg Priority = iota
	PriAlert
	PriCrit
	PriErr
	PriWarning
	PriNotice
	PriInfo
	PriDebug
)

var priorityNames = map[string]Priority{
	"emerg":   PriEmerg,
	"alert":   PriAlert,
	"crit":    PriCrit,
	"err":     PriErr,
	"error":   PriErr,
	"warning": PriWarning,
	"warn":    PriWarning,
	"notice":  PriNotice,
	"info":    PriInfo,
	"debug":   PriDebug,
}

// ParsePriority accepts a syslog level name ("err", "info", ...) or a digit
// 0-7.
func ParsePriority(s string) (Priority, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if p, ok := priorityNames[s]; ok {
		return p, nil
	}
	if len(s) == 1 && s[0] >= '0' && s[0] <= '7' {
		return Priority(s[0] - '0'), nil
	}
	return PriInfo, fmt.Errorf("sdjournal: unknown priority %q", s)
}

// buildSendFields assembles the FIELD=value strings submitted for one
// entry. vars must not carry reserved names (MESSAGE, PRIORITY, trusted
// fields).
func buildSendFields(message string, pri Priority, vars map[string]string) ([]string, error) {
	if pri < PriEmerg || pri > PriDebug {
		return nil, fmt.Errorf("sdjournal: priority %d out of range", pri)
	}
	fields := make([]string, 0, len(vars)+2)
	fields = append(fields, "MESSAGE="+message)
	fields = append(fields, fmt.Sprintf("PRIORITY=%d", pri))
	for name, value := range vars {
		if name == "MESSAGE" || name == "PRIORITY" {
			return nil, fmt.Errorf("sdjournal: variable %q shadows a reserved field", name)
		}
		if !validUserFieldName(name) {
			return nil, fmt.Errorf("sdjournal: invalid variable name %q", name)
		}
		fields = append(fields, name+"="+value)
	}
	return fields, nil
}

// Send submits a structured entry to the journal daemon. vars attaches
// additional FIELD=value pairs beyond MESSAGE and PRIORITY; field names
// must be uppercase and must not start with an underscore.
//
// Submission goes through the native client library, so the daemon adds
// the usual trusted fields (_PID, _UID, _COMM, ...) on its side.
func Send(message string, pri Priority, vars map[string]string) error {
	fields, err := buildSendFields(message, pri, vars)
	if err != nil {
		return err
	}
	return sendv(fields)
}

// Print submits a formatted message with the given priority and no extra
// variables.
func Print(pri Priority, format string, a ...any) error {
	return Send(fmt.Sprintf(format, a...), pri, nil)
}

func sendv(fields []string) error {
	iov := make([]C.struct_iovec, len(fields))
	bufs := make([]unsafe.Pointer, len(fields))
	for i, f := range fields {
		bufs[i] = C.CBytes([]byte(f))
		iov[i].iov_base = bufs[i]
		iov[i].iov_len = C.size_t(len(f))
	}
	defer func() {
		for _, b := range bufs {
			C.free(b)
		}
	}()

	if r := C.sd_journal_sendv(&iov[0], C.int(len(iov))); r < 0 {
		return newError("sd_journal_sendv", int(r))
	}
	return nil
}
