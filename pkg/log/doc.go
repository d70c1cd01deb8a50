// Package log provides the structured logging used by the jrnl CLI and the
// HTTP gateway. It is a thin layer over log/slog with a fixed field API, so
// call sites stay uniform and the output format (text or JSON) is chosen
// once at startup.
package log
