// Package logger provides structured logging for the component loader
// using zerolog.
//
// It supports JSON and console output formats, level configuration,
// and component-scoped loggers with structured fields.
//
// # Usage
//
//	log := logger.WithComponent("loader")
//	log.Info("component loaded", logger.Fields("component", name))
package logger
