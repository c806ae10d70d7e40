// Package validator checks that a loaded component instance satisfies
// the lifecycle contract.
//
// Validate performs the structural checks: the instance exists, carries
// a non-empty name, and binds both the start and end hooks. Each
// violation is a CONTRACT_VIOLATION error naming the exact missing
// piece. The Prober exercises the hooks of reserved-prefix components,
// start then end, and turns a failing hook into a LIFECYCLE_FAILED
// error.
package validator
