// Package content turns a business profile into a calendar of post drafts.
//
// Every function that varies its wording takes an explicit *rand.Rand so a fixed
// seed reproduces the same calendar. The lookup tables in this package are
// read-only after init.
package content
