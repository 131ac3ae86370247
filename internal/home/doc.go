// Package home holds the whole-home singleton state for Hearth Core: the
// security system, media playback, and user preferences.
//
// Each singleton lives in a single-row table (the row id is pinned to 1 by a
// check constraint). Updates are upsert-merges: fields present in the patch
// overwrite, everything else is retained, and an absent row is created from
// the patch. Writes are single-statement and therefore atomic per singleton;
// concurrent updates last-write-wins per field set, which is the documented
// contract.
//
// Preferences differ from the other two singletons: they are never seeded,
// and an absent row is answered with a synthetic default at the API boundary
// without ever being persisted.
package home
