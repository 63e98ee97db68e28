// Package config defines the immutable configuration consumed by every bridge
// component. A Config is built once at startup (defaults, a YAML file loaded
// through afs, command line flags or the JSON document embedded in a page) and
// is then passed by pointer into constructors; components never modify it.
package config
