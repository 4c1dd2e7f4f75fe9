// Package cli provides the interactive EJC Digital terminal client.
//
// It wires configuration, the local session store, the fixture and liturgy
// transports and a REPL that plays the role of the app shell. Typical flow:
// restore the saved session, show the login form when there is none, then
// route page commands until the user exits.
//
// Key features:
//   - Login / Logout (fallback credential, then users.json)
//   - Pages: home, listão, gamificação, agenda, liturgia, perfil and the
//     placeholder pages
//   - Listão search and filters
//   - Liturgy date selection and retry of failed loads
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, Resolve and runREPL for details.
package cli
