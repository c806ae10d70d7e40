// Package validation provides struct validation for configuration types.
//
// It wraps the validator library so callers get the loader's structured
// AppError type with per-field details instead of raw validator errors.
//
//	type Config struct {
//	    Module string `validate:"required"`
//	}
//	err := validation.Validate(cfg)
package validation
