// Package jrnlcmd implements the jrnl CLI subcommands: range reads, live
// follow with a durable cursor file, structured writes, unique field
// listing, and the HTTP gateway.
package jrnlcmd
