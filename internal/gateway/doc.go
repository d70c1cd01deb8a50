// Package gateway exposes journal reads over HTTP, in the spirit of
// systemd-journal-gatewayd.
//
// Endpoints:
//
//	GET /v1/healthz            liveness (verifies a journal handle opens)
//	GET /v1/entries            range read: ?cursor=&limit=&reverse=&filter=
//	GET /v1/entries?follow=true  live tail as Server-Sent Events
//	GET /v1/fields/{FIELD}     distinct values of a field
//	GET /v1/status             journal disk usage
//
// Every request gets its own journal handle because a handle owns a single
// read cursor; the handle is closed when the request finishes.
package gateway
