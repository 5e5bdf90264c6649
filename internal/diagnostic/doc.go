// Package diagnostic provides structured errors, warnings and notes produced
// while checking layout files.
//
// Key capabilities:
//   - Errors that make a layout unusable (unknown kinds, duplicate fields, cycles)
//   - Warnings for options a field kind ignores
//   - Record and field context on every entry
package diagnostic
