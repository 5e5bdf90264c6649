// Package record binds field descriptors into record types and holds rows of
// values for them.
//
// A Schema is the ordered field list of one record type. It is built once,
// from declarations in source order, optionally extending a parent schema,
// and is then shared read-only by every Record of that type. A Record owns a
// private slice of values, one per schema position, and routes every
// assignment through the pipeline of the field at that position:
//
//	var lead = record.MustSchema("LeadFormat",
//		field.VarChar("error_code", field.Default("error")),
//		field.VarChar("comment_txt"),
//	)
//
//	r, err := lead.New(record.Positional(cols...))
//
// Names are case-insensitive. Positional values map to positions 0, 1, 2 and
// so on. Required fields are only checked by Validate and ValidateAll.
package record
