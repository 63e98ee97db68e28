// Package scheme installs a bearer credential into a documentation UI's own
// authorization store without knowing which security scheme name the API
// document uses.
//
// The Negotiator probes an ordered list of common scheme names and stops at
// the first one the UI accepts. Failures of individual attempts are swallowed;
// when nothing is accepted the token remains available through manual copy.
package scheme
