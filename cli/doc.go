// Package cli implements the terminal host of the bridge.
//
// Each invocation restores the persisted session, runs one action and exits:
//
//	docauth login -e user@example.com -p secret --login-url ... --logout-url ...
//	docauth status
//	docauth copy
//	docauth call GET /pets -o openapi.yaml --auto-authorize
//	docauth logout
//	docauth mock --port 8089 -e user@example.com -p secret
//
// Credentials can also come from a scy secret resource (cred.Basic).
package cli
