// Package field describes the columns of a flat-file record and the coercion
// applied to every value assigned to them.
//
// A Field is declared once with a kind and options and is never mutated
// afterwards. Every kind shares the generic tail: strip, then zfill, then
// truncate to max_length. In front of it each kind adds its own steps:
//
//   - KindGeneric: none.
//   - KindVarChar: text longer than max_length is rejected, not truncated.
//   - KindFixedChar: null becomes "", the text is padded with the pad
//     character on the side opposite to the justification and then cut to
//     exactly length characters.
//   - KindInteger: "" is null, anything else must parse as a base-10 integer
//     within [min, max] and is rendered back as decimal text.
//   - KindDate, KindTime: time.Time input is formatted with a strftime
//     pattern, other input passes through.
//
// Required is not enforced on assignment. It is checked only by Check, which
// the record package calls when a record is explicitly validated.
package field
