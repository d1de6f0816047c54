// Package error provides structured errors for the extkit library.
//
// Package: error
// Title: extkit Error Handling Framework
// Description: Structured errors with codes, severities, details and a captured
//              stack trace. Errors stay compatible with the standard library
//              through Unwrap, so errors.Is and errors.As keep working.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with contextual errors and codes
//
// Usage:
//   import mdwerror "github.com/msto63/extkit/core/error"
//
//   err := mdwerror.New("both markers are empty").
//     WithCode(mdwerror.CodeInvalidInput).
//     WithOperation("stringx.GetBetween")
//
//   if mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
//     // caller error
//   }
package error
