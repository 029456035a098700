// Package api is the typed REST client for the UniResource Hub backend.
//
// # Overview
//
// The package provides:
//  1. A Client configured with a base URL, a request timeout, and a
//     read-only TokenSource consulted before every outbound request to
//     attach the bearer credential.
//  2. One facade file per backend resource family (auth, users, resources,
//     categories, tags, bookmarks), each exposing one method per endpoint
//     that performs exactly one HTTP call and returns the parsed body.
//  3. A shared request/decode helper that serializes JSON bodies, injects
//     an X-Request-Id header, retries transport failures with bounded
//     backoff, and maps error responses to sentinel errors.
//
// # Error Handling
//
// Failures distinguish transport-level errors (no response received,
// ErrUnavailable) from HTTP error statuses (*APIError carrying the status
// and the backend's detail message). Callers match conditions with
// errors.Is: ErrUnauthorized (401), ErrNotFound (404), ErrUnavailable.
//
// The transport never reacts to a 401 itself; session cleanup and
// navigation are the session manager's concern.
//
// Concurrency & Contexts
//
// Client is safe for concurrent use. All operations accept context.Context
// and honor cancellation and deadlines.
package api
