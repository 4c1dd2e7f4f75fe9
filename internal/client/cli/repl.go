package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Navigate(ctx context.Context, path string) error
	Liturgy(ctx context.Context, arg string) error
	Retry(ctx context.Context) error
	Search(ctx context.Context, term string) error
	Category(ctx context.Context, category string) error
	SubFilter(ctx context.Context, sub string) error
	Help()
}

// runREPL reads commands from reader and dispatches them to a until EOF,
// "exit" or "quit".
//
// Without a session only help, login and exit are accepted; anything else
// brings the login form back. With a session:
//
//	<path> | <alias>      open a page; unknown paths open the home page
//	liturgia [data|hoje]  open the liturgy for a date
//	retry                 re-run the load of the current page
//	buscar <termo>        search the Listão
//	categoria <nome>      Todos, Encontrista or Equipe
//	filtro <nome>         team or circle within the category
//	logout                end the session
//
// Errors returned by handlers are printed and the loop continues.
//
// Commands and form prompts share reader, so a line is never buffered away
// from the prompt that asks for it.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ejc %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])
		rest := strings.TrimSpace(strings.Join(parts[1:], " "))

		if cmd == "exit" || cmd == "quit" || cmd == "sair" {
			printlnFn("Até logo!")
			return
		}

		err = nil
		switch {
		case cmd == "help" || cmd == "ajuda":
			a.Help()

		case cmd == "login":
			if a.isLoggedIn() {
				printlnFn("Você já está conectado. Use 'logout' para trocar de conta.")
				continue
			}
			err = a.Login(ctx)

		case !a.isLoggedIn():
			err = a.Login(ctx)

		case cmd == "logout":
			err = a.Logout(ctx)

		case cmd == "liturgia":
			err = a.Liturgy(ctx, rest)

		case cmd == "retry" || cmd == "tentar":
			err = a.Retry(ctx)

		case cmd == "buscar":
			err = a.Search(ctx, rest)

		case cmd == "categoria":
			err = a.Category(ctx, rest)

		case cmd == "filtro":
			err = a.SubFilter(ctx, rest)

		case cmd == "go" || cmd == "ir":
			err = a.Navigate(ctx, rest)

		default:
			if !IsRoute(cmd) {
				printlnFn("Comando desconhecido: " + cmd)
			}
			err = a.Navigate(ctx, cmd)
		}

		if err != nil {
			printlnFn("Erro: " + err.Error())
		}
	}
}
