package cli

import (
	"context"

	"github.com/dmitrijs2005/ejcdigital/internal/client/services"
)

// Login shows the login form and authenticates. A failed attempt renders
// the message inline and keeps the typed e-mail as the default of the next
// attempt. On success the shell lands on the home page.
func (a *App) Login(ctx context.Context) error {
	a.println(a.render.Login(a.loginEmail, ""))

	email, err := GetTextWithDefault(a.reader, "E-mail", a.loginEmail, a.out)
	if err != nil {
		return err
	}
	a.loginEmail = email

	password, err := GetPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	if _, err := a.auth.Login(ctx, email, password); err != nil {
		a.log.Warn(ctx, "login failed", "error", err)
		a.println(a.render.Login(email, services.UserMessage(err)))
		return nil
	}

	a.loginEmail = ""
	a.filter = services.MemberFilter{}
	return a.Navigate(ctx, PathHome)
}

// Logout clears the session and shows the login form again.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	a.path = PathHome
	a.println(a.render.Login("", "Sessão encerrada."))
	return nil
}
