// Package testutil provides helpers for testing component loading and
// validation: canned instances, call-recording hooks, and error code
// assertions.
package testutil
