// Package session implements the store of active automation sessions. All
// mutations and snapshot reads run under a shared mutual-exclusion
// discipline; command execution against one session is serialised through
// the session's own mutex.
package session
