// Package session owns the client's authentication lifecycle.
//
// A Manager moves between three states (Unauthenticated, Initializing,
// Authenticated) and is the only component that mutates the persisted
// session (credential + identity pair). Everything else reads it through
// the Store, which also serves as the api.TokenSource consulted on every
// outbound request.
//
// The credential and the identity are always written and cleared together
// inside one transaction, so a concurrent reader can never observe a torn
// pair.
package session
