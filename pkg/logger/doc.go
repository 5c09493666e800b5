// Package logger builds the structured slog loggers used across authforms.
//
//	log, err := logger.NewFromConfig(cfg,
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
// Development gets text output at debug level, production JSON at info.
// Attribute helpers (Error, Component, Form, Field, Outcome, ...) keep key
// names consistent between packages, and Middleware writes one access
// record per HTTP request.
package logger
