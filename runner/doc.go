// Package runner orchestrates one load-and-validate cycle: configure
// telemetry, resolve and load the configured component module, run the
// structural checks, and exercise reserved-prefix components before
// shutting the telemetry pipeline down again.
package runner
