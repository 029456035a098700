// Package models defines the wire types exchanged with the UniResource Hub
// backend. The client never owns these entities; it caches the Identity of
// the logged-in user locally and treats everything else as request/response
// payloads.
//
// Field names and enum casing follow the backend contract exactly
// (snake_case JSON keys, upper-case enum values such as "ACTIVE" / "FILE").
package models
