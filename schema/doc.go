// Package schema defines the data model shared by the bridge components: the
// authenticated Session, its User profile, the login endpoint response and the
// transient messages shown to the user.
package schema
