// File: timer.go
// Title: Performance Timer
// Description: Measures an operation and logs its duration on completion.
// Author: msto63
// Version: v0.1.1
// Created: 2026-09-28
// Modified: 2026-10-18
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: Timers always log at debug level

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
	}
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs the elapsed time. A second call returns 0.
func (t *Timer) Stop() time.Duration {
	return t.finish(nil)
}

// StopWithError stops the timer and logs err together with the elapsed time
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(err)
}

func (t *Timer) finish(err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true

	elapsed := t.Elapsed()
	if t.logger == nil {
		return elapsed
	}

	fields := t.fields.Merge(Fields{"operation": t.operation})
	entryLevel := LevelDebug
	message := t.operation + " completed"
	if err != nil {
		entryLevel = LevelError
		message = t.operation + " failed"
		fields["success"] = false
	}

	l := t.logger
	l.mutex.RLock()
	if !entryLevel.ShouldLog(l.level) {
		l.mutex.RUnlock()
		return elapsed
	}
	entry := NewEntry(entryLevel, message)
	entry.Logger = l.name
	entry.CorrelationID = l.correlationID
	entry.Error = err
	entry.Duration = elapsed
	entry.Fields = l.contextFields.Merge(fields)
	formatter, output, writeMu := l.formatter, l.output, l.writeMu
	l.mutex.RUnlock()

	l.write(formatter, output, writeMu, entry)
	return elapsed
}
