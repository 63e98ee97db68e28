// Package i18n resolves display strings for the authentication panel.
//
// Lookup falls back from the requested language to the default language and
// finally to the key itself, so a missing translation is visible but never fatal.
package i18n
