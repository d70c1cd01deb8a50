package filter

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/cel-go/cel"

	"github.com/tasleson/sdjournal"
)

// Filter wraps a compiled CEL program shared by the CLI and the gateway.
// When disabled (built from an empty expression), Match always returns true.
type Filter struct {
	prog    cel.Program
	enabled bool
}

// New compiles expr. An empty or all-whitespace expression yields a
// disabled filter that matches everything.
func New(expr string) (Filter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Filter{enabled: false}, nil
	}
	env, err := cel.NewEnv(
		cel.Variable("message", cel.StringType),
		cel.Variable("priority", cel.IntType),
		cel.Variable("unit", cel.StringType),
		cel.Variable("transport", cel.StringType),
		cel.Variable("pid", cel.IntType),
		// Expose the raw field map for anything without a named variable
		cel.Variable("fields", cel.MapType(cel.StringType, cel.StringType)),
		cel.Variable("ts_us", cel.IntType),
		cel.Variable("now_us", cel.IntType),
	)
	if err != nil {
		return Filter{}, err
	}
	ast, iss := env.Parse(expr)
	if iss != nil && iss.Err() != nil {
		return Filter{}, iss.Err()
	}
	checked, iss2 := env.Check(ast)
	if iss2 != nil && iss2.Err() != nil {
		return Filter{}, iss2.Err()
	}
	prog, err := env.Program(checked)
	if err != nil {
		return Filter{}, err
	}
	return Filter{prog: prog, enabled: true}, nil
}

// Match evaluates the expression against an entry. Evaluation errors (e.g.
// a missing map key) count as no match. When disabled, returns true.
func (f Filter) Match(e *sdjournal.Entry) bool {
	if !f.enabled {
		return true
	}
	out, _, err := f.prog.Eval(map[string]any{
		"message":   e.Fields["MESSAGE"],
		"priority":  fieldInt(e.Fields, "PRIORITY"),
		"unit":      e.Fields["_SYSTEMD_UNIT"],
		"transport": e.Fields["_TRANSPORT"],
		"pid":       fieldInt(e.Fields, "_PID"),
		"fields":    e.Fields,
		"ts_us":     int64(e.RealtimeUsec),
		"now_us":    time.Now().UnixMicro(),
	})
	if err != nil {
		return false
	}
	b, ok := out.Value().(bool)
	return ok && b
}

func fieldInt(fields map[string]string, name string) int64 {
	v, ok := fields[name]
	if !ok {
		return -1
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return -1
	}
	return n
}
