// Package logging is the structured-logging seam shared by the CLI and the
// fixture server. SlogLogger is the only implementation.
package logging

import "context"

// Logger takes a message plus alternating keys and values:
//
//	log.Info(ctx, "liturgy loaded", "date", date, "cycle", id)
//
// Every method receives the caller's context so handlers can pick up
// request-scoped attributes.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a logger that adds args to every record.
	With(args ...any) Logger
}
