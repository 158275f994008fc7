// Package bookchat provides a terminal chat client for a documentation book.
// It submits free-text questions to an external search backend, renders the
// matched passages, and offers static shortcuts that jump directly to known
// chapters of the book.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, rod/).
package bookchat
