package cli

import "strings"

// Page paths of the shell.
const (
	PathHome         = "/"
	PathListao       = "/listao"
	PathGamification = "/gamificacao"
	PathAgenda       = "/agenda"
	PathLiturgy      = "/liturgia"
	PathProfile      = "/perfil"
	PathCommunity    = "/comunidade"
	PathPrayers      = "/oracoes"
	PathFormation    = "/formacao"
)

// routes maps every accepted spelling to its path. Lookups are lower-cased.
var routes = map[string]string{
	"/":            PathHome,
	"home":         PathHome,
	"inicio":       PathHome,
	"início":       PathHome,
	"/listao":      PathListao,
	"listao":       PathListao,
	"listão":       PathListao,
	"membros":      PathListao,
	"/gamificacao": PathGamification,
	"gamificacao":  PathGamification,
	"gamificação":  PathGamification,
	"reliquias":    PathGamification,
	"relíquias":    PathGamification,
	"desafios":     PathGamification,
	"/agenda":      PathAgenda,
	"agenda":       PathAgenda,
	"/liturgia":    PathLiturgy,
	"liturgia":     PathLiturgy,
	"/perfil":      PathProfile,
	"perfil":       PathProfile,
	"/comunidade":  PathCommunity,
	"comunidade":   PathCommunity,
	"/oracoes":     PathPrayers,
	"oracoes":      PathPrayers,
	"orações":      PathPrayers,
	"/formacao":    PathFormation,
	"formacao":     PathFormation,
	"formação":     PathFormation,
}

// Resolve maps user input to a page path. Unknown input resolves to the
// home page, like a catch-all route redirecting to "/".
func Resolve(input string) string {
	key := strings.ToLower(strings.TrimSpace(input))
	if p, ok := routes[key]; ok {
		return p
	}
	if len(key) > 1 {
		if p, ok := routes[strings.TrimRight(key, "/")]; ok {
			return p
		}
	}
	return PathHome
}

// IsRoute reports whether input names a page.
func IsRoute(input string) bool {
	key := strings.ToLower(strings.TrimSpace(input))
	if _, ok := routes[key]; ok {
		return true
	}
	return strings.HasPrefix(key, "/")
}

var placeholderTitles = map[string]string{
	PathCommunity: "Comunidade",
	PathPrayers:   "Orações",
	PathFormation: "Formação",
}
