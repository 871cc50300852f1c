// Package server holds the HTTP server configuration.
//
// The main entry point starts the Fiber server; this package only defines
// the port, the API key and the platform assumed when a request does not
// name one.
package server
