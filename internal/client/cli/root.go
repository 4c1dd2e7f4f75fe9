package cli

import (
	"context"
)

// Root restores the saved session, shows the login form or the home page
// accordingly and runs the REPL on the app's input.
func (a *App) Root(ctx context.Context) {
	a.println("EJC Digital (digite 'help' para ver os comandos)")

	if _, err := a.sessions.Restore(ctx); err != nil {
		a.log.Error(ctx, "restoring session failed", "error", err)
	}

	var err error
	if a.isLoggedIn() {
		err = a.Navigate(ctx, PathHome)
	} else {
		err = a.Login(ctx)
	}
	if err != nil {
		a.log.Warn(ctx, "startup", "error", err)
	}

	runREPL(ctx, a, a.status, a.reader)
}
