// Package errors is the standard error construction API for extkit modules.
//
// Package: errors
// Title: Standard Error Handling API for extkit
// Description: Builds *error.Error values with a consistent module/operation
//              detail layout and code naming, so errors raised by stringx,
//              tablex, filex and timex can be analysed the same way.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation
//
// Every error carries the "module" and "operation" details:
//
//	err := errors.NewErrorBuilder(errors.ModuleTablex).
//		Operation("load_csv").
//		Message("csv content has no header line").
//		Code(mdwerror.CodeInvalidInput).
//		Build()
//
//	errors.ExtractModule(err)    // "tablex"
//	errors.ExtractOperation(err) // "load_csv"
package errors
