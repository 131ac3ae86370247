// Package seed populates an empty store with the demo home dataset.
//
// Seeding runs once at process start, after migrations. It is idempotent:
// the presence of any room marks the store as populated and subsequent runs
// do nothing.
package seed
