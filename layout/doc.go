// Package layout reads record type declarations from YAML or TOML files.
//
// A layout file lists record types in order. Each record names its fields
// with a kind and the options of that kind, and may extend a record declared
// anywhere in the same file:
//
//	version: "1"
//	records:
//	  - name: LeadFormat
//	    fields:
//	      - {name: error_code, kind: varchar, default: error}
//	      - {name: comment_txt, kind: varchar}
//	  - name: LeadWithScore
//	    extends: LeadFormat
//	    fields:
//	      - {name: score, kind: integer, min: 0, max: 99}
//
// Validate reports every problem found in a parsed file as diagnostics.
// Build validates and then turns each record into a record.Schema, parents
// first.
package layout
