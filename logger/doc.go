// Package logger provides structured logging for audiobench
// using zerolog.
//
// It supports JSON and console output, log level configuration from the
// environment, and component-scoped loggers with structured fields.
//
// # Usage
//
//	log := logger.Get("harness")
//	log.Info("run complete", map[string]interface{}{"method": "openai"})
package logger
