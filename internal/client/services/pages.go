package services

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/ejcdigital/internal/client/client"
	"github.com/dmitrijs2005/ejcdigital/internal/client/loader"
	"github.com/dmitrijs2005/ejcdigital/internal/client/models"
	"github.com/dmitrijs2005/ejcdigital/internal/logging"
)

// AllFilter selects every category or sub-filter.
const AllFilter = "Todos"

// RelicView is a relic definition together with the user's unlock record.
type RelicView struct {
	models.Relic
	Unlocked   bool
	UnlockedAt string
}

// HomeData feeds the home page.
type HomeData struct {
	Announcements []models.Announcement
	Events        []models.Event
	Relics        []RelicView
}

// MemberFilter is the Listão search state. Empty Category and Sub mean
// AllFilter.
type MemberFilter struct {
	Search   string
	Category string
	Sub      string
}

// PageService fetches and shapes the data of the fixture-backed pages.
type PageService struct {
	fixtures client.FixtureClient
	loc      *time.Location
	log      logging.Logger
}

// NewPageService returns a page service. Event dates are read in loc; nil
// means time.Local.
func NewPageService(fixtures client.FixtureClient, loc *time.Location, log logging.Logger) *PageService {
	if loc == nil {
		loc = time.Local
	}
	return &PageService{fixtures: fixtures, loc: loc, log: log.With("component", "pages")}
}

// Home loads events and relics in parallel. Whatever was fetched is returned
// alongside the first error.
func (p *PageService) Home(ctx context.Context, user *models.UserSession) (HomeData, error) {
	var (
		events []models.Event
		relics []models.Relic
	)
	err := loader.FetchAll(ctx,
		loader.Into(&events, p.fixtures.Events),
		loader.Into(&relics, p.fixtures.Relics),
	)
	if err != nil {
		p.log.Warn(ctx, "home loaded partially", "error", err)
	}
	return HomeData{
		Announcements: Announcements(),
		Events:        p.sortEvents(events),
		Relics:        UnlockedRelics(user, relics),
	}, err
}

// UnlockedRelics joins the user's unlock records with the relic definitions,
// newest unlock first. Records without a definition are dropped.
func UnlockedRelics(user *models.UserSession, relics []models.Relic) []RelicView {
	if user == nil {
		return nil
	}
	byID := make(map[string]models.Relic, len(relics))
	for _, r := range relics {
		byID[r.ID] = r
	}

	records := slices.Clone(user.Relics)
	slices.SortStableFunc(records, func(a, b models.UnlockedRelic) int {
		return b.Time().Compare(a.Time())
	})

	out := make([]RelicView, 0, len(records))
	for _, ur := range records {
		r, ok := byID[ur.ID]
		if !ok {
			continue
		}
		out = append(out, RelicView{Relic: r, Unlocked: true, UnlockedAt: ur.UnlockedAt})
	}
	return out
}

// Members loads the Listão.
func (p *PageService) Members(ctx context.Context) ([]models.Member, error) {
	return p.fixtures.Members(ctx)
}

// FilterMembers applies the Listão search, category and sub-filter. The
// search matches name or nickname case-insensitively; the sub-filter matches
// the member's team or circle.
func FilterMembers(members []models.Member, f MemberFilter) []models.Member {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]models.Member, 0, len(members))
	for _, m := range members {
		if term != "" &&
			!strings.Contains(strings.ToLower(m.Name), term) &&
			!strings.Contains(strings.ToLower(m.Nickname), term) {
			continue
		}
		if !isAll(f.Category) && string(m.Category) != f.Category {
			continue
		}
		if !isAll(f.Sub) && m.Team != f.Sub {
			continue
		}
		out = append(out, m)
	}
	return out
}

func isAll(v string) bool {
	return v == "" || strings.EqualFold(v, AllFilter)
}

// Teams returns the sorted distinct teams of service-team members.
func Teams(members []models.Member) []string {
	var teams []string
	for _, m := range members {
		if m.Category == models.CategoryTeam && m.Team != "" {
			teams = append(teams, m.Team)
		}
	}
	slices.Sort(teams)
	return slices.Compact(teams)
}

// SubFilters lists the sub-filter options of a category: circles for
// participants, teams for service members, none otherwise.
func SubFilters(category string, members []models.Member) []string {
	switch models.MemberCategory(category) {
	case models.CategoryParticipant:
		return slices.Clone(models.Circles)
	case models.CategoryTeam:
		return Teams(members)
	default:
		return nil
	}
}

// Relics loads every relic, marked and ordered for the user.
func (p *PageService) Relics(ctx context.Context, user *models.UserSession) ([]RelicView, error) {
	relics, err := p.fixtures.Relics(ctx)
	if err != nil {
		return nil, err
	}
	return SortRelics(user, relics), nil
}

// SortRelics puts unlocked relics first, then orders by numeric id.
func SortRelics(user *models.UserSession, relics []models.Relic) []RelicView {
	unlocked := map[string]string{}
	if user != nil {
		for _, ur := range user.Relics {
			unlocked[ur.ID] = ur.UnlockedAt
		}
	}

	out := make([]RelicView, 0, len(relics))
	for _, r := range relics {
		at, ok := unlocked[r.ID]
		out = append(out, RelicView{Relic: r, Unlocked: ok, UnlockedAt: at})
	}
	slices.SortStableFunc(out, func(a, b RelicView) int {
		if a.Unlocked != b.Unlocked {
			if a.Unlocked {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.NumericID(), b.NumericID())
	})
	return out
}

// Announcements returns the notices shown at the top of the home page.
func Announcements() []models.Announcement {
	return []models.Announcement{
		{
			ID:          1,
			Title:       "Encontro Anual 2025",
			Description: "As inscrições para o maior encontro do ano já estão abertas!",
			ImageURL:    "https://images.unsplash.com/photo-1523240795612-9a054b0db644?auto=format&fit=crop&q=80&w=800",
			Tag:         "Destaque",
		},
		{
			ID:          2,
			Title:       "Missa de Envio",
			Description: "Neste domingo, às 19h na Matriz. Contamos com sua presença!",
			ImageURL:    "https://images.unsplash.com/photo-1544427920-c49ccfb85579?auto=format&fit=crop&q=80&w=800",
			Tag:         "Aviso",
		},
		{
			ID:          3,
			Title:       "Campanha do Agasalho",
			Description: "Estamos arrecadando doações no salão paroquial. Participe!",
			ImageURL:    "https://images.unsplash.com/photo-1594498653385-d5172c532c00?auto=format&fit=crop&q=80&w=800",
			Tag:         "Social",
		},
	}
}

// Challenges returns the current challenge list.
func Challenges() []models.Challenge {
	return []models.Challenge{
		{ID: "c1", Title: "Participar da Missa do Domingo", Points: 50, Category: models.ChallengeSpiritual, Completed: true},
		{ID: "c2", Title: "Ajudar na limpeza do salão", Points: 30, Category: models.ChallengeService},
		{ID: "c3", Title: "Responder Quiz sobre os Evangelhos", Points: 40, Category: models.ChallengeSpiritual},
		{ID: "c4", Title: "Convidar um amigo para o encontro", Points: 100, Category: models.ChallengeCommunity},
	}
}

// Events loads the agenda ordered by start.
func (p *PageService) Events(ctx context.Context) ([]models.Event, error) {
	events, err := p.fixtures.Events(ctx)
	if err != nil {
		return nil, err
	}
	return p.sortEvents(events), nil
}

// sortEvents orders by start time; events with an unparseable date go last
// in their original order.
func (p *PageService) sortEvents(events []models.Event) []models.Event {
	out := slices.Clone(events)
	slices.SortStableFunc(out, func(a, b models.Event) int {
		ta, okA := a.Start(p.loc)
		tb, okB := b.Start(p.loc)
		switch {
		case okA && okB:
			return ta.Compare(tb)
		case okA:
			return -1
		case okB:
			return 1
		default:
			return 0
		}
	})
	return out
}
