// Package logger provides a structured logging facility based on Zap.
//
// Handlers attach the request's ray id with WithRayID so that every log line
// of a request can be correlated. The reconciliation packages under core do
// not log; the features and commands that drive them do.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
