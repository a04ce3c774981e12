/*
Package tracing is a thin facade over the schuko tracing core, so that
the soundlaw packages do not each carry their own tracer plumbing.

Licensed under the terms of the 3-Clause BSD license.
Copyright © 2017–21 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tracing

import (
	"fmt"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// Tracer returns the core tracer all soundlaw packages trace to.
func Tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// P attaches a key/value pair to the next trace message.
func P(key string, val interface{}) tracing.Trace {
	return gtrace.CoreTracer.P(key, fmt.Sprint(val))
}

// Debugf traces a debug-level message to the core tracer.
func Debugf(format string, args ...interface{}) {
	gtrace.CoreTracer.Debugf(format, args...)
}

// Infof traces an info-level message to the core tracer.
func Infof(format string, args ...interface{}) {
	gtrace.CoreTracer.Infof(format, args...)
}

// Errorf traces an error-level message to the core tracer.
func Errorf(format string, args ...interface{}) {
	gtrace.CoreTracer.Errorf(format, args...)
}
