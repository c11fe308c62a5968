// Package cli provides the interactive storefront command-line client.
//
// It wires configuration, the local session database, the API gateway, the
// card processor client and the application services into an interactive
// REPL. Typical flow: restore the persisted session, show the prompt with
// the signed-in user and cart badge, and execute user commands.
//
// Key features:
//   - Login / Register / Logout (session persisted across restarts)
//   - Cart: list lines, remove a line
//   - Checkout: cash on delivery, wallet redirect, card handshake
//   - Order confirmation view
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
