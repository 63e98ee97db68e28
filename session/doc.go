// Package session implements the authentication state machine.
//
// A Machine moves between Unauthenticated and Authenticated through Restore,
// Login and Logout, persisting through store.Store, propagating tokens with
// scheme.Negotiator and pushing every transition to view.Reconciler.
// The login and logout endpoints are reached through Endpoint; HTTPEndpoint
// is the form/JSON over HTTP implementation used by both hosts.
package session
