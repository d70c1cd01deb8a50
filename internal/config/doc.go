// Package config provides loading and environment overlay for jrnl
// configuration. It exposes a Default() baseline, JSON file loading, and a
// SDJOURNAL_* environment overlay applied on top.
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load("/etc/jrnl.json"); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
package config
