// Package filter compiles CEL expressions into journal entry predicates.
//
// Expressions see a small, stable set of variables extracted from each
// entry:
//
//	message    MESSAGE as a string
//	priority   PRIORITY as an int (-1 when absent)
//	unit       _SYSTEMD_UNIT
//	transport  _TRANSPORT
//	pid        _PID as an int (-1 when absent)
//	fields     the full field map
//	ts_us      entry wall clock, microseconds since the epoch
//	now_us     evaluation time, microseconds since the epoch
//
// Example: priority <= 3 && unit == "sshd.service".
package filter
