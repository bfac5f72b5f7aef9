// Package cli implements the interactive notekeeper shell: account
// registration and login, and the note commands (list, show, add, edit,
// delete, attach, detach, sort). Command handlers log their own errors and
// never abort the loop.
package cli
