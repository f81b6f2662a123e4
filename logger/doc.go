// Package logger provides structured logging for treekit drivers
// using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers with structured fields.
// Pipeline operators never log; logging belongs to the code driving
// the pipeline.
//
// # Usage
//
//	log := logger.NewDefault("treeparse").WithComponent("driver")
//	log.Info("run complete", logger.Fields(logger.FieldLeaves, n))
package logger
