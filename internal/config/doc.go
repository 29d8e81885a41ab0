// Package config loads settings for the floatcalc command from a YAML file,
// FLOATCALC_* environment variables, and command-line flags.
//
// Example floatcalc.yaml:
//
//	max_depth: 64
//	format: "%.6g"
//	vars:
//	  r: 2.5
//	  g: 9.81
//	logger:
//	  level: info
//	  format: text
//	  output: stderr
package config
