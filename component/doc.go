// Package component defines the core types of the component convention:
// the lifecycle contract, the shared collaborator state handed to each
// instance, and the registration boundary where exports declare their
// construction shape.
//
// # Types
//
//   - Instance: the minimal lifecycle contract (name + start/end hooks)
//   - State: the fixed collaborator bundle, built fresh per load
//   - Export: a tagged union declaring a constructor- or factory-shaped export
//   - Registry: maps module references to exports
package component
