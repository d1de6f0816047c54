// Package log provides structured logging for extkit.
//
// Package: log
// Title: extkit Structured Logging
// Description: Leveled, structured logging with JSON, text, console and logfmt
//              output. Library code logs non-fatal diagnostics through named
//              child loggers; the CLI configures the default logger once.
// Author: msto63
// Version: v0.1.1
// Created: 2026-09-28
// Modified: 2026-10-18
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: Usage example builds the logger from Config
//
// Usage:
//   import mdwlog "github.com/msto63/extkit/core/log"
//
//   logger := mdwlog.NewWithConfig(mdwlog.Config{
//     Level:  mdwlog.LevelDebug,
//     Format: mdwlog.FormatLogfmt,
//     Name:   "tablex",
//   })
//
//   logger.Warn("column not found", mdwlog.Fields{"column": "Age"})
//
//   timer := logger.StartTimer("save_snapshot")
//   // ...
//   timer.Stop()
package log
