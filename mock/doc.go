// Package mock provides an in-memory credential server reproducing the login
// and logout endpoints the bridge talks to, plus a bearer protected resource.
//
// It lets tests and the terminal host's demo mode exercise the full login,
// propagation and try-it-out flow without a real application server.
package mock
