// Package console implements an in-process API documentation console.
//
// A Console is built from an OpenAPI document. It keeps an authorization
// store keyed by security scheme name, which the bridge fills through
// PreauthorizeAPIKey exactly as a browser documentation UI would, and issues
// "try it out" requests that carry the stored credential. Bearer schemes are
// applied with an oauth2 transport, apiKey schemes as a header, query or
// cookie value.
package console
