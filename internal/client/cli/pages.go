package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/ejcdigital/internal/client/liturgy"
	"github.com/dmitrijs2005/ejcdigital/internal/client/models"
	"github.com/dmitrijs2005/ejcdigital/internal/client/services"
)

// Navigate routes to path and renders the page, starting its load cycle.
// Unknown paths land on the home page.
func (a *App) Navigate(ctx context.Context, path string) error {
	a.path = Resolve(path)
	user := a.sessions.Current()
	if user == nil {
		a.println(a.render.Login(a.loginEmail, ""))
		return nil
	}

	a.println(a.render.Header(user, a.path))

	switch a.path {
	case PathHome:
		snap := a.home.Run(ctx, func(ctx context.Context) (services.HomeData, error) {
			return a.pages.Home(ctx, user)
		})
		a.println(a.render.Home(user, snap))

	case PathListao:
		snap := a.members.Run(ctx, a.pages.Members)
		a.println(a.render.Listao(snap, a.filter))

	case PathGamification:
		snap := a.relics.Run(ctx, func(ctx context.Context) ([]services.RelicView, error) {
			return a.pages.Relics(ctx, user)
		})
		a.println(a.render.Gamification(user, snap, services.Challenges()))

	case PathAgenda:
		snap := a.events.Run(ctx, a.pages.Events)
		a.println(a.render.Agenda(snap))

	case PathLiturgy:
		return a.waitLiturgy(ctx, a.liturgy.Today(ctx))

	case PathProfile:
		a.println(a.render.Profile(user))

	default:
		a.println(a.render.Placeholder(placeholderTitles[a.path]))
	}
	return nil
}

// Liturgy selects a date ("hoje" or empty means today) and shows the
// readings. Invalid dates are reported and leave the selection unchanged.
func (a *App) Liturgy(ctx context.Context, arg string) error {
	a.path = PathLiturgy
	arg = strings.TrimSpace(arg)
	if arg == "" || strings.EqualFold(arg, "hoje") {
		return a.waitLiturgy(ctx, a.liturgy.Today(ctx))
	}

	done, err := a.liturgy.SetDate(ctx, arg)
	if err != nil {
		if errors.Is(err, liturgy.ErrInvalidDate) {
			a.println("Data inválida. Use AAAA-MM-DD ou DD/MM/AAAA.")
			return nil
		}
		return err
	}
	return a.waitLiturgy(ctx, done)
}

func (a *App) waitLiturgy(ctx context.Context, done <-chan struct{}) error {
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	a.println(a.render.Liturgy(a.liturgy.View()))
	return nil
}

// Retry re-runs the load of the current page. On the liturgy page it
// re-issues the request for the selected date.
func (a *App) Retry(ctx context.Context) error {
	if a.path == PathLiturgy {
		return a.waitLiturgy(ctx, a.liturgy.Retry(ctx))
	}
	return a.Navigate(ctx, a.path)
}

// Search sets the Listão search term and shows the directory.
func (a *App) Search(ctx context.Context, term string) error {
	a.filter.Search = term
	return a.Navigate(ctx, PathListao)
}

// Category switches the Listão category. The sub-filter resets with it.
func (a *App) Category(ctx context.Context, category string) error {
	switch {
	case strings.EqualFold(category, string(models.CategoryParticipant)):
		category = string(models.CategoryParticipant)
	case strings.EqualFold(category, string(models.CategoryTeam)):
		category = string(models.CategoryTeam)
	default:
		category = services.AllFilter
	}
	a.filter.Category = category
	a.filter.Sub = services.AllFilter
	return a.Navigate(ctx, PathListao)
}

// SubFilter narrows the Listão to one team or circle of the current
// category. Names outside the category's options reset the sub-filter.
func (a *App) SubFilter(ctx context.Context, sub string) error {
	a.filter.Sub = services.AllFilter
	for _, opt := range services.SubFilters(a.filter.Category, a.members.Snapshot().Data) {
		if strings.EqualFold(opt, sub) {
			a.filter.Sub = opt
		}
	}
	return a.Navigate(ctx, PathListao)
}

// Help prints the commands available in the current state.
func (a *App) Help() {
	a.println(a.render.Help(a.isLoggedIn()))
}
