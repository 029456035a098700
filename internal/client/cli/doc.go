// Package cli implements the interactive UniResource Hub terminal client.
//
// The entry point is App, created by NewApp and started with Run. Run first
// restores any persisted session, then drops into a read-eval-print loop
// (see runREPL) whose commands map onto the backend API: searching and
// showing resources, uploading files, registering links, downloading,
// managing categories, tags and bookmarks, and the account commands
// (register, login, logout, profile, passwd).
//
// Interactive input goes through small helpers in input.go; passwords are
// read without echo and wiped after use. Command handlers report API
// failures through handleErr, which also tears the session down when the
// server answers 401.
package cli
