package layout

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/mrj0/vinyl/field"
	"github.com/mrj0/vinyl/internal/common"
	"github.com/mrj0/vinyl/internal/diagnostic"
	"github.com/mrj0/vinyl/internal/match"
)

const maxSuggestions = 3

// Validate checks a parsed layout file. Errors make Build fail; warnings
// point at options that have no effect.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("layout_is_nil", "layout file is nil", "", "")
		return res
	}

	if f.Version != "" && f.Version != CurrentVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported layout version %q (expected %q)", f.Version, CurrentVersion), "", "")
	}

	for _, key := range f.undecoded {
		res.AddWarning("unknown_key", fmt.Sprintf("unknown key %q ignored", key), "", "")
	}

	if common.IsEmpty(f.Records) {
		res.AddWarning("no_records", "layout declares no records", "", "")
		return res
	}

	names := lo.Map(f.Records, func(rd RecordDef, _ int) string { return rd.Name })
	index := recordIndex(f.Records)

	for i := range f.Records {
		rd := &f.Records[i]

		if strings.TrimSpace(rd.Name) == "" {
			res.AddError("missing_record_name", fmt.Sprintf("record #%d has no name", i), "", "")
		} else if first := index[match.LowerName(rd.Name)]; first != i {
			res.AddError("duplicate_record",
				fmt.Sprintf("record %q already declared as #%d", rd.Name, first), rd.Name, "")
		}

		if rd.Extends != "" {
			if _, ok := index[match.LowerName(rd.Extends)]; !ok {
				res.AddErrorWithSuggestions("unknown_extends",
					fmt.Sprintf("unknown parent record %q", rd.Extends), rd.Name, "",
					match.Suggest(rd.Extends, names, maxSuggestions))
			}
		}

		validateFields(res, rd)
	}

	validateOrder(res, f.Records)

	return res
}

func validateOrder(res *diagnostic.Diagnostics, records []RecordDef) {
	order, err := buildOrder(records)
	if err == nil {
		return
	}

	for i, rd := range records {
		if !slices.Contains(order, i) {
			res.AddError("cyclic_extends",
				fmt.Sprintf("extends chain through %q never reaches a root record", rd.Extends), rd.Name, "")
		}
	}
}

func validateFields(res *diagnostic.Diagnostics, rd *RecordDef) {
	if common.IsEmpty(rd.Fields) && rd.Extends == "" {
		res.AddWarning("no_fields", "record declares no fields", rd.Name, "")
	}

	seen := make(map[string]struct{}, len(rd.Fields))

	for i := range rd.Fields {
		fd := &rd.Fields[i]

		key := match.LowerName(fd.Name)
		if key == "" {
			res.AddError("missing_field_name", fmt.Sprintf("field #%d has no name", i), rd.Name, "")
			continue
		}

		if _, ok := seen[key]; ok {
			res.AddError("duplicate_field", fmt.Sprintf("field %q declared twice", fd.Name), rd.Name, fd.Name)
			continue
		}
		seen[key] = struct{}{}

		validateField(res, rd.Name, fd)
	}
}

func validateField(res *diagnostic.Diagnostics, recordName string, fd *FieldDef) {
	errs := len(res.Errors)

	kind, err := field.ParseKind(fd.Kind)
	if err != nil {
		res.AddErrorWithSuggestions("unknown_kind", err.Error(), recordName, fd.Name,
			match.Suggest(fd.Kind, field.KindNames(), maxSuggestions))

		return
	}

	if fd.MaxLength != nil && *fd.MaxLength < 0 {
		res.AddError("negative_width", fmt.Sprintf("max_length must not be negative, got %d", *fd.MaxLength), recordName, fd.Name)
	}
	if fd.ZFill != nil && *fd.ZFill < 0 {
		res.AddError("negative_width", fmt.Sprintf("zfill must not be negative, got %d", *fd.ZFill), recordName, fd.Name)
	}

	if fd.Min != nil && fd.Max != nil && *fd.Min > *fd.Max {
		res.AddError("invalid_bounds", fmt.Sprintf("min %d is greater than max %d", *fd.Min, *fd.Max), recordName, fd.Name)
	}

	if fd.Pad != "" && utf8.RuneCountInString(fd.Pad) != 1 {
		res.AddError("invalid_pad", fmt.Sprintf("pad must be one character, got %q", fd.Pad), recordName, fd.Name)
	}

	switch field.Justification(strings.ToLower(fd.Justify)) {
	case "", field.JustifyLeft, field.JustifyRight:
	default:
		res.AddError("unknown_justify",
			fmt.Sprintf("unknown justify %q (expected %q or %q)", fd.Justify, field.JustifyLeft, field.JustifyRight),
			recordName, fd.Name)
	}

	if kind == field.KindFixedChar {
		switch {
		case fd.Length == nil:
			res.AddError("missing_length", "fixed-width field needs a length", recordName, fd.Name)
		case *fd.Length <= 0:
			res.AddError("invalid_length", fmt.Sprintf("length must be positive, got %d", *fd.Length), recordName, fd.Name)
		}
	}

	warnIgnored(res, recordName, fd, kind)

	if len(res.Errors) > errs {
		return
	}

	// the default goes through the same pipeline as in a built schema
	if _, err := field.New(kind, fd.Name, fd.options()...).Bind(match.LowerName(fd.Name), 0); err != nil {
		res.AddError("invalid_default", err.Error(), recordName, fd.Name)
	}
}

func warnIgnored(res *diagnostic.Diagnostics, recordName string, fd *FieldDef, kind field.KindEnum) {
	var ignored []string

	if kind != field.KindFixedChar {
		if fd.Length != nil {
			ignored = append(ignored, "length")
		}
		if fd.Pad != "" {
			ignored = append(ignored, "pad")
		}
		if fd.Justify != "" {
			ignored = append(ignored, "justify")
		}
	}

	if kind != field.KindInteger {
		if fd.Min != nil {
			ignored = append(ignored, "min")
		}
		if fd.Max != nil {
			ignored = append(ignored, "max")
		}
	}

	if !kind.IsTemporal() && fd.Format != "" {
		ignored = append(ignored, "format")
	}

	for _, opt := range ignored {
		res.AddWarning("option_ignored", fmt.Sprintf("%s has no effect on %s fields", opt, strings.ToLower(fd.Kind)),
			recordName, fd.Name)
	}
}
