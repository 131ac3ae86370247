// Package energy provides read access to per-room energy usage records.
// Records are written once at seed time; the API only lists them.
package energy
