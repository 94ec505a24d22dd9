// Package logger provides structured logging for the queryable engine
// using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers with structured fields.
//
// # Usage
//
//	log := logger.NewDefault("queryable")
//	log.Debug("element pulled", logger.Fields("index", 3))
package logger
