// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and console or JSON encoding.
//
// # Event Correlation
//
// Every click or pickup handled by the stacker gets an event id (a UUID).
// WithEventID attaches it to the log entry so all lines about one interaction
// can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Stacker enabled")
//
//	l := logger.WithEventID(log, logger.NewEventID())
//	l.Debug("Pickup consolidated", zap.Int("residual", 0))
package logger
