package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/ejcdigital/internal/client/liturgy"
	"github.com/dmitrijs2005/ejcdigital/internal/client/loader"
	"github.com/dmitrijs2005/ejcdigital/internal/client/models"
	"github.com/dmitrijs2005/ejcdigital/internal/client/services"
)

var monthAbbr = [...]string{"JAN", "FEV", "MAR", "ABR", "MAI", "JUN", "JUL", "AGO", "SET", "OUT", "NOV", "DEZ"}

// Renderer formats pages with one theme and a fixed content width.
type Renderer struct {
	theme Theme
	width int

	title  lipgloss.Style
	faint  lipgloss.Style
	accent lipgloss.Style
	warn   lipgloss.Style
	card   lipgloss.Style
}

func New(theme Theme, width int) *Renderer {
	if width <= 0 {
		width = 72
	}
	return &Renderer{
		theme:  theme,
		width:  width,
		title:  lipgloss.NewStyle().Bold(true).Foreground(theme.NormalText),
		faint:  lipgloss.NewStyle().Foreground(theme.FaintText),
		accent: lipgloss.NewStyle().Bold(true).Foreground(theme.Accent),
		warn:   lipgloss.NewStyle().Foreground(theme.Warning),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1).
			Width(width - 2),
	}
}

func (r *Renderer) join(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, kept...)
}

// status renders the loading line or the inline warning of a cycle. It is
// empty for a ready cycle.
func (r *Renderer) status(state loader.State, message string) string {
	switch state {
	case loader.StateLoading:
		return r.faint.Render("Carregando...")
	case loader.StateError:
		return r.warn.Render("⚠ " + message)
	default:
		return ""
	}
}

// Header is the top bar shown above every authenticated page.
func (r *Renderer) Header(user *models.UserSession, path string) string {
	left := r.accent.Render("EJC Digital")
	right := r.faint.Render(fmt.Sprintf("%s · %s", user.DisplayName(), path))
	gap := r.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// Login renders the form. email is echoed back so a failed attempt keeps it.
func (r *Renderer) Login(email, message string) string {
	lines := []string{
		r.accent.Render("EJC Digital"),
		r.faint.Render("Entre com seu e-mail e senha"),
	}
	if message != "" {
		lines = append(lines, r.warn.Render(message))
	}
	if email != "" {
		lines = append(lines, "E-mail: "+email)
	}
	return r.card.Render(r.join(lines...))
}

// Home greets the user and lists recent relics and upcoming events.
func (r *Renderer) Home(user *models.UserSession, snap loader.Snapshot[services.HomeData]) string {
	greeting := r.card.Render(r.join(
		r.title.Render(fmt.Sprintf("Paz e Bem, %s!", user.DisplayName())),
		r.faint.Render("Bem-vindo ao serviço."),
	))

	var notices []string
	if len(snap.Data.Announcements) > 0 {
		notices = append(notices, r.title.Render("Avisos"))
	}
	for _, a := range snap.Data.Announcements {
		notices = append(notices,
			fmt.Sprintf("  %s %s", r.accent.Render("["+a.Tag+"]"), a.Title),
			r.faint.Render("    "+a.Description),
		)
	}

	var relics []string
	relics = append(relics, r.title.Render("Minhas Relíquias"))
	shown := snap.Data.Relics
	if len(shown) > 4 {
		shown = shown[:4]
	}
	if len(shown) == 0 && snap.State != loader.StateLoading {
		relics = append(relics, r.faint.Render("Nenhuma relíquia conquistada ainda."))
	}
	for _, rv := range shown {
		relics = append(relics, r.relicLine(rv))
	}

	events := []string{r.title.Render(fmt.Sprintf("Agenda · %d Próximos", len(snap.Data.Events)))}
	for _, e := range snap.Data.Events {
		events = append(events, r.eventLine(e))
	}

	return r.join(
		greeting,
		r.status(snap.State, snap.Message),
		r.join(notices...),
		r.join(relics...),
		"",
		r.join(events...),
	)
}

func (r *Renderer) relicLine(rv services.RelicView) string {
	if !rv.Unlocked {
		return r.faint.Render(fmt.Sprintf("  🔒 %s (%s)", rv.Name, rv.Rarity))
	}
	name := lipgloss.NewStyle().Foreground(r.theme.RarityColor(rv.Rarity)).Render(rv.Name)
	line := fmt.Sprintf("  %s %s", name, r.faint.Render("("+string(rv.Rarity)+")"))
	if t, err := models.ParseTimestamp(rv.UnlockedAt); err == nil {
		line += r.faint.Render(" · " + t.Format("02/01/2006"))
	}
	return line
}

func (r *Renderer) eventLine(e models.Event) string {
	when := e.Date
	if t, ok := e.Start(time.UTC); ok {
		when = fmt.Sprintf("%02d %s", t.Day(), monthAbbr[t.Month()-1])
	}
	tag := lipgloss.NewStyle().Foreground(r.theme.EventColor(e.Type)).Render(strings.ToUpper(string(e.Type)))
	return fmt.Sprintf("  %s  %s  %s", r.accent.Render(when), tag, e.Theme) +
		r.faint.Render(fmt.Sprintf("  %s · %s", e.Time, e.Location))
}

// Listao renders the member directory after applying f.
func (r *Renderer) Listao(snap loader.Snapshot[[]models.Member], f services.MemberFilter) string {
	found := services.FilterMembers(snap.Data, f)

	category := f.Category
	if category == "" {
		category = services.AllFilter
	}
	header := r.join(
		r.title.Render("Listão"),
		r.faint.Render(fmt.Sprintf("%d Encontrados · categoria: %s", len(found), category)),
	)
	var subs string
	if opts := services.SubFilters(f.Category, snap.Data); len(opts) > 0 {
		subs = r.faint.Render("Filtros: " + strings.Join(append([]string{services.AllFilter}, opts...), ", "))
	}

	var rows []string
	for _, m := range found {
		row := fmt.Sprintf("%s %s", r.title.Render(m.Name), r.faint.Render("“"+m.Nickname+"”"))
		detail := fmt.Sprintf("    %s · %s · %d", m.Category, m.Team, m.Year)
		if m.Contact != "" {
			detail += " · " + m.Contact
		}
		if m.Instagram != "" {
			detail += " · @" + strings.TrimPrefix(m.Instagram, "@")
		}
		rows = append(rows, row, r.faint.Render(detail))
	}
	if len(found) == 0 && snap.State == loader.StateReady {
		rows = append(rows, r.faint.Render("Nenhum membro encontrado."))
	}

	return r.join(header, subs, r.status(snap.State, snap.Message), r.join(rows...))
}

// Gamification renders the relic collection and the challenge list.
func (r *Renderer) Gamification(user *models.UserSession, snap loader.Snapshot[[]services.RelicView], challenges []models.Challenge) string {
	summary := r.card.Render(r.join(
		r.title.Render("Relíquias"),
		fmt.Sprintf("%s conquistadas · %s pontos",
			r.accent.Render(fmt.Sprint(len(user.Relics))),
			r.accent.Render(fmt.Sprint(user.Points))),
	))

	var relics []string
	for _, rv := range snap.Data {
		relics = append(relics, r.relicLine(rv))
	}

	lines := []string{r.title.Render("Desafios")}
	for _, c := range challenges {
		mark := "[ ]"
		if c.Completed {
			mark = r.accent.Render("[x]")
		}
		lines = append(lines, fmt.Sprintf("  %s %s %s", mark, c.Title, r.faint.Render(fmt.Sprintf("+%d pts · %s", c.Points, c.Category))))
	}

	return r.join(summary, r.status(snap.State, snap.Message), r.join(relics...), "", r.join(lines...))
}

// Agenda renders the events page.
func (r *Renderer) Agenda(snap loader.Snapshot[[]models.Event]) string {
	lines := []string{r.title.Render("Próximos Compromissos")}
	for _, e := range snap.Data {
		lines = append(lines, r.eventLine(e))
	}
	if len(snap.Data) == 0 && snap.State == loader.StateReady {
		lines = append(lines, r.faint.Render("Nenhum compromisso agendado."))
	}
	return r.join(r.join(lines...), r.status(snap.State, snap.Message))
}

// Profile renders the logged-in user's card and team history.
func (r *Renderer) Profile(user *models.UserSession) string {
	card := []string{
		r.title.Render(user.Name),
		r.accent.Render(string(user.Role)) + r.faint.Render(" · "+user.CurrentTeam),
	}
	if user.Nickname != "" {
		card = append(card, r.faint.Render("“"+user.Nickname+"”"))
	}
	card = append(card, fmt.Sprintf("%d relíquias · %d pontos", len(user.Relics), user.Points))

	var history []string
	if len(user.History) > 0 {
		history = append(history, r.title.Render("Histórico de Equipes"))
		for _, h := range user.History {
			history = append(history, fmt.Sprintf("  %d  %s", h.Year, h.Team))
		}
	}
	return r.join(r.card.Render(r.join(card...)), r.join(history...))
}

// Placeholder renders a page that has no content yet.
func (r *Renderer) Placeholder(title string) string {
	return r.card.Render(r.join(
		r.title.Render(title),
		r.faint.Render("Em Construção"),
	))
}

var slotTitles = []struct {
	slot  string
	title string
}{
	{models.SlotFirstReading, "Primeira Leitura"},
	{models.SlotPsalm, "Salmo Responsorial"},
	{models.SlotSecondReading, "Segunda Leitura"},
	{models.SlotGospel, "Santo Evangelho"},
}

// Liturgy renders the selector state: the date line, then either the
// loading line, the error with its retry hint, or the readings.
func (r *Renderer) Liturgy(v liturgy.View) string {
	head := r.join(
		r.title.Render("Liturgia Diária"),
		r.faint.Render("Data: "+v.Date.Display()),
	)

	switch v.State {
	case liturgy.StateIdle:
		return r.join(head, r.faint.Render("Use 'liturgia <data>' ou 'liturgia hoje'."))
	case liturgy.StateLoading:
		return r.join(head, r.faint.Render("Buscando a Palavra..."))
	case liturgy.StateError:
		return r.join(head, r.warn.Render("⚠ "+v.Message), r.faint.Render("Digite 'retry' para tentar novamente."))
	}

	doc := v.Document
	if doc == nil {
		return head
	}
	color := lipgloss.NewStyle().Bold(true).Foreground(LiturgicalColor(doc.Color))
	parts := []string{
		head,
		r.card.Render(r.join(
			color.Render(strings.ToUpper(doc.ColorName())),
			r.title.Render(doc.Celebration),
			r.faint.Render(strings.Trim(doc.Date+" · "+doc.Weekday, " ·")),
		)),
	}
	if doc.EntranceAntiphon != "" {
		parts = append(parts, r.faint.Render("Antífona de Entrada"), doc.EntranceAntiphon)
	}
	for _, s := range slotTitles {
		reading, ok := doc.First(s.slot)
		if !ok {
			continue
		}
		parts = append(parts, "", r.reading(s.title, s.slot, reading))
	}
	if doc.CommunionAntiphon != "" {
		parts = append(parts, "", r.faint.Render("Antífona de Comunhão"), doc.CommunionAntiphon)
	}
	parts = append(parts, "", r.faint.Render("Fonte: Liturgia Diária"))
	return r.join(parts...)
}

func (r *Renderer) reading(title, slot string, rd models.Reading) string {
	lines := []string{r.faint.Render(strings.ToUpper(title)) + "  " + r.accent.Render(rd.Reference)}
	if rd.Title != "" {
		lines = append(lines, r.title.Render(rd.Title))
	}
	if rd.Refrain != "" {
		lines = append(lines, r.accent.Render("R. "+rd.Refrain))
	}
	lines = append(lines, lipgloss.NewStyle().Width(r.width).Render(rd.Text))
	switch slot {
	case models.SlotGospel:
		lines = append(lines, r.faint.Render("— Palavra da Salvação."))
	case models.SlotPsalm:
	default:
		lines = append(lines, r.faint.Render("— Palavra do Senhor."))
	}
	return r.join(lines...)
}

// Help lists the commands available in the current state.
func (r *Renderer) Help(loggedIn bool) string {
	if !loggedIn {
		return r.faint.Render("Comandos: login, help, exit")
	}
	return r.join(
		r.title.Render("Páginas"),
		"  home (/)            listao (/listao)      gamificacao (/gamificacao)",
		"  agenda (/agenda)    liturgia (/liturgia)  perfil (/perfil)",
		"  comunidade          oracoes               formacao",
		r.title.Render("Ações"),
		"  buscar <termo>      categoria <Todos|Encontrista|Equipe>   filtro <nome>",
		"  liturgia [data|hoje]  retry  logout  help  exit",
	)
}
