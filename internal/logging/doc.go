// Package logging provides structured logging for the extended-operation client.
//
// # Overview
//
// Logger is a small key/value interface backed by zerolog. It supports:
//
//   - Four levels (debug, info, warn, error)
//   - Text (console) and JSON output
//   - Request IDs for correlating the log lines of a single operation
//   - Field-based contextual loggers
//
// # Creating a Logger
//
//	logger := logging.New(logging.Config{
//	    Level:  "debug",
//	    Format: "json",
//	    Output: "stderr",
//	})
//
// For tests and library defaults, use a no-op logger:
//
//	logger := logging.NewNop()
//
// # Structured Logging
//
//	logger.Debug("extended response dispatched",
//	    "oid", "2.16.840.1.113719.1.27.100.18",
//	    "outcome", "typed",
//	)
//
//	reqLogger := logger.WithRequestID(logging.GenerateRequestID())
//	opLogger := reqLogger.WithFields("oid", oid)
//
// JSON entries carry "ts", "level" and "msg" keys plus any fields.
package logging
