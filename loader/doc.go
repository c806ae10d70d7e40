// Package loader resolves a component module reference against the
// registry and constructs a running instance from its export.
//
// Constructor-shaped exports are built first and then initialized via
// their Init hook; the constructed object's Start, End, and Name
// capabilities are adapted onto the instance. Factory-shaped exports
// produce the instance directly. Every failure along the path carries
// a typed error code: RESOLUTION_FAILED, INVALID_SHAPE, INIT_FAILED,
// or TIMEOUT.
package loader
