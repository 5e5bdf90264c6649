package record

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrj0/vinyl/field"
	"github.com/mrj0/vinyl/internal/testutil/testlog"
)

func testFormat(t *testing.T) *Schema {
	t.Helper()

	s, err := NewSchema("TestFormat",
		field.Generic("one", field.Default("w00t")),
		field.Generic("two", field.MaxLength(10)),
		field.Generic("three", field.ZFill(5)),
		field.Date("four_date"),
		field.Time("four_hour"),
		field.Integer("five", field.Min(0), field.Max(99)),
		field.VarChar("six", field.MaxLength(10)),
		field.FixedChar("seven", 10, field.PadWith('0'), field.Justify(field.JustifyRight)),
		field.FixedChar("eight", 4, field.Justify(field.JustifyRight)),
		field.FixedChar("nine", 30),
		field.VarChar("ten", field.Required()),
		field.Generic("stripped", field.Strip()),
	)
	require.NoError(t, err)

	return s
}

func mustGet(t *testing.T, r *Record, name string) field.Value {
	t.Helper()

	v, err := r.Get(name)
	require.NoError(t, err)

	return v
}

func TestRecordPipelines(t *testing.T) {
	testlog.Start(t)

	r, err := testFormat(t).New()
	require.NoError(t, err)

	assert.Equal(t, field.Text("w00t"), mustGet(t, r, "one"))

	require.NoError(t, r.Set("two", "asdflknasdlfknasdfl"))
	assert.Equal(t, field.Text("asdflknasd"), mustGet(t, r, "two"))
	require.NoError(t, r.SetAt(1, "asdflknasdlfknasdfl"))
	assert.Equal(t, field.Text("asdflknasd"), mustGet(t, r, "two"))

	require.NoError(t, r.Set("three", 1))
	assert.Equal(t, field.Text("00001"), mustGet(t, r, "three"))

	ts := time.Unix(1340336022, 0).UTC()
	require.NoError(t, r.Set("four_date", ts))
	assert.Equal(t, field.Text("2012-06-22"), mustGet(t, r, "four_date"))
	require.NoError(t, r.Set("four_hour", ts))
	assert.Equal(t, field.Text("03:33:42"), mustGet(t, r, "four_hour"))

	require.NoError(t, r.Set("five", 5))
	assert.Equal(t, field.Text("5"), mustGet(t, r, "five"))
	assert.Error(t, r.Set("five", 100))
	assert.Error(t, r.Set("five", -1))
	assert.Equal(t, field.Text("5"), mustGet(t, r, "five"), "failed set keeps the prior value")
	require.NoError(t, r.Set("five", ""))
	assert.True(t, mustGet(t, r, "five").IsNull(), "empty text reads as null for integers")

	assert.Error(t, r.Set("six", "01234567890ads"))
	assert.True(t, mustGet(t, r, "six").IsNull())

	assert.Equal(t, field.Text("0000000000"), mustGet(t, r, "seven"))
	require.NoError(t, r.Set("seven", "12345"))
	assert.Equal(t, field.Text("0000012345"), mustGet(t, r, "seven"))

	require.NoError(t, r.Set("eight", "Y"))
	assert.Equal(t, field.Text("   Y"), mustGet(t, r, "eight"))
	require.NoError(t, r.Set("eight", "All work and no play makes Derek a dull boy."))
	assert.Equal(t, field.Text("All "), mustGet(t, r, "eight"))

	require.NoError(t, r.Set("nine", "Keep Calm and Carry On"))
	assert.Equal(t, field.Text("Keep Calm and Carry On        "), mustGet(t, r, "nine"))

	require.NoError(t, r.Set("stripped", "    a    "))
	assert.Equal(t, field.Text("a"), mustGet(t, r, "stripped"))

	assert.Equal(t, slices.Collect(r.Values()), slices.Collect(r.Values()), "iteration is restartable")
	assert.Equal(t, 12, r.Len())
}

func TestRecordValidate(t *testing.T) {
	testlog.Start(t)

	r, err := testFormat(t).New()
	require.NoError(t, err)

	for _, empty := range []any{"", nil} {
		require.NoError(t, r.Set("ten", empty), "required is not checked on assignment")

		err := r.Validate()
		var ve field.ValidationError
		require.ErrorAs(t, err, &ve, spew.Sdump(empty))
		assert.Equal(t, "ten", ve.Field)
		assert.EqualError(t, err, "ten: field is required")

		all := r.ValidateAll()
		require.Error(t, all)
		assert.Equal(t, "ten: field is required", all.Error(), "one failure per empty required field")
	}

	require.NoError(t, r.Set("ten", "x"))
	assert.NoError(t, r.Validate())
	assert.NoError(t, r.Validate(), "validation does not mutate")
	assert.NoError(t, r.ValidateAll())
}

func TestRecordValidateAllJoins(t *testing.T) {
	testlog.Start(t)

	s, err := NewSchema("Both",
		field.VarChar("a", field.Required()),
		field.Generic("b"),
		field.Integer("c", field.Required()),
	)
	require.NoError(t, err)

	r, err := s.New()
	require.NoError(t, err)

	assert.EqualError(t, r.Validate(), "a: field is required")
	assert.EqualError(t, r.ValidateAll(), "a: field is required\nc: field is required")
}

func TestRecordInstancesAreIsolated(t *testing.T) {
	testlog.Start(t)

	s := testFormat(t)

	a, err := s.New()
	require.NoError(t, err)
	b, err := s.New()
	require.NoError(t, err)

	require.NoError(t, a.Set("one", "a"))
	require.NoError(t, b.Set("one", "b"))

	assert.Equal(t, field.Text("a"), mustGet(t, a, "one"))
	assert.Equal(t, field.Text("b"), mustGet(t, b, "one"))
	assert.Equal(t, field.Text("w00t"), s.Field(0).Initial(), "schema holds no record values")

	c, err := s.New()
	require.NoError(t, err)
	assert.Equal(t, field.Text("w00t"), mustGet(t, c, "one"))
}

func TestLead(t *testing.T) {
	testlog.Start(t)

	lead := leadSchema(t)

	r, err := lead.New(Named("ERROR_CODE", nil))
	require.NoError(t, err)
	assert.True(t, mustGet(t, r, "ERROR_CODE").IsNull())
	assert.True(t, mustGet(t, r, "error_code").IsNull())

	require.NoError(t, r.SetAt(0, "e"))
	v, err := r.At(0)
	require.NoError(t, err)
	assert.Equal(t, field.Text("e"), v)
	assert.Equal(t, field.Text("e"), mustGet(t, r, "ERROR_CODE"))
	assert.Equal(t, field.Text("e"), slices.Collect(r.Values())[0])
	assert.Equal(t, "error_code", lead.Field(0).Name())

	boom, err := lead.New(Named("error_code", "boom"))
	require.NoError(t, err)
	assert.Equal(t, field.Text("boom"), mustGet(t, boom, "Error_Code"))

	_, err = lead.New(Named("asdf", "nicht gut"))
	var me *MismatchError
	require.ErrorAs(t, err, &me)
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Equal(t, "asdf", me.Field)
	assert.EqualError(t, err, `LeadFormat: unknown field "asdf" setting value "nicht gut"`)

	all, err := lead.New(Positional("boom", "boom"))
	require.NoError(t, err)
	assert.Equal(t, field.Text("boom"), mustGet(t, all, "ERROR_CODE"))

	u, err := lead.New(Named("comment_txt", "š"))
	require.NoError(t, err)
	assert.Equal(t, field.Text("š"), mustGet(t, u, "comment_txt"))

	require.NoError(t, u.Set("comment_txt", 123))
	assert.Equal(t, field.Text("123"), mustGet(t, u, "comment_txt"))
}

func TestCaseInsensitiveAccess(t *testing.T) {
	testlog.Start(t)

	r, err := leadSchema(t).New()
	require.NoError(t, err)

	variants := []string{"comment_txt", "COMMENT_TXT", "Comment_Txt", "cOmMeNt_TxT"}
	for _, set := range variants {
		for _, get := range variants {
			require.NoError(t, r.Set(set, set))
			assert.Equal(t, field.Text(set), mustGet(t, r, get), "set %s, get %s", set, get)
		}
	}
}

func TestFixedFormat(t *testing.T) {
	testlog.Start(t)

	fixed := func(name string, length int, opts ...field.Option) *field.Field {
		return field.FixedChar(name, length, opts...)
	}
	right := field.Justify(field.JustifyRight)

	s, err := NewSchema("FixedFormat",
		fixed("control_2", 4, field.Default("0002")),
		fixed("customer_nbr", 26, field.PadWith('0'), right),
		fixed("is_business", 1),
		fixed("customer_name", 40),
		fixed("cost_center", 5, field.PadWith('0'), right),
		fixed("user_name", 16, field.Default("dude")),
		fixed("item_type", 17, field.Default("Customer/Prospect")),
		fixed("item_status", 2, field.Default(" P")),
		fixed("subject_code", 32),
		fixed("start_date", 10),
		fixed("start_time", 8, field.Default("00:00:00")),
		fixed("assigned_to_user", 20),
		fixed("is_syncable", 1, field.Default("Y")),
		fixed("raw_data_string", 175),
		fixed("filler_1", 15, field.Default("          {TRM:")),
		field.VarChar("lead_id", field.MaxLength(15)),
		fixed("filler_2", 1, field.Default("}")),
	)
	require.NoError(t, err)

	r, err := s.New(Named("customer_nbr", "12345"), Named("customer_name", "Napoleon Bonaparte"))
	require.NoError(t, err)

	assert.Equal(t, field.Text("0002"), mustGet(t, r, "control_2"))
	assert.Equal(t, field.Text("00000000000000000000012345"), mustGet(t, r, "customer_nbr"))
	assert.Equal(t, field.Text(" P"), mustGet(t, r, "item_status"))
	assert.Equal(t, field.Text("Napoleon Bonaparte                      "), mustGet(t, r, "customer_name"))
	assert.Equal(t, field.Text("00000"), mustGet(t, r, "cost_center"))

	line := strings.Join(r.Strings(""), "")
	assert.Len(t, line, 373, spew.Sdump(r.Strings("")))
	assert.True(t, strings.HasPrefix(line, "000200000000000000000000012345 Napoleon"))
	assert.True(t, strings.HasSuffix(line, "{TRM:}"))

	require.NoError(t, r.Set("lead_id", "L-1"))
	assert.True(t, strings.HasSuffix(strings.Join(r.Strings(""), ""), "{TRM:L-1}"))
}

func TestLoadDoesNotRollBack(t *testing.T) {
	testlog.Start(t)

	lead := leadSchema(t)

	_, err := lead.New(Positional("a", "b", "c"))
	require.Error(t, err)

	r, err := lead.New()
	require.NoError(t, err)

	err = r.Load(Positional("a", "b"), Positional("c"))
	var me *MismatchError
	require.ErrorAs(t, err, &me)
	assert.ErrorIs(t, err, ErrIndexRange)
	assert.Equal(t, 2, me.Index)
	assert.Equal(t, "c", me.Value)
	assert.EqualError(t, err, `LeadFormat: index 2 out of range [0, 2) setting value "c"`)

	assert.Equal(t, []string{"a", "b"}, r.Strings(""), "earlier positions stay assigned")
}

func TestLoadOrder(t *testing.T) {
	testlog.Start(t)

	r, err := leadSchema(t).New(
		Named("error_code", "named"),
		Positional("positional", "comment"),
		Named("Comment_Txt", "first"),
		Named("COMMENT_TXT", "second"),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"named", "second"}, r.Strings(""), "named values apply after positional ones, in order")

	require.NoError(t, r.Load(Named("error_code", "again")))
	assert.Equal(t, []string{"again", "second"}, r.Strings(""), "load keeps unassigned values")
}

func TestLoadCoercionFailure(t *testing.T) {
	testlog.Start(t)

	s, err := NewSchema("Scores", field.Generic("name"), field.Integer("score"))
	require.NoError(t, err)

	r, err := s.New()
	require.NoError(t, err)

	err = r.Load(Positional("ann", "lots"))
	var ve field.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "score", ve.Field)
	assert.Equal(t, []string{"ann", "-"}, r.Strings("-"))
}

func TestAccessErrors(t *testing.T) {
	testlog.Start(t)

	r, err := leadSchema(t).New()
	require.NoError(t, err)

	_, err = r.Get("eror_code")
	var me *MismatchError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, []string{"error_code"}, me.Suggestions)
	assert.Contains(t, err.Error(), "did you mean error_code?")

	assert.ErrorIs(t, r.Set("nope", 1), ErrUnknownField)

	for _, i := range []int{-1, 2, 100} {
		_, err := r.At(i)
		assert.ErrorIs(t, err, ErrIndexRange, "At(%d)", i)
		assert.ErrorIs(t, r.SetAt(i, "x"), ErrIndexRange, "SetAt(%d)", i)
	}

	err = r.Delete("error_code")
	assert.ErrorIs(t, err, errors.ErrUnsupported)
	assert.EqualError(t, err, `LeadFormat: cannot delete field "error_code": unsupported operation`)
	assert.Equal(t, 2, r.Len())
}

func TestIteration(t *testing.T) {
	testlog.Start(t)

	r, err := leadSchema(t).New()
	require.NoError(t, err)

	values := r.Values()
	assert.Equal(t, []field.Value{field.Text("error"), field.Null}, slices.Collect(values))

	require.NoError(t, r.Set("comment_txt", "later"))
	assert.Equal(t, []field.Value{field.Text("error"), field.Text("later")}, slices.Collect(values), "values are live, not a snapshot")

	var names []string
	for name, v := range r.All() {
		names = append(names, name+"="+v.String())
	}
	assert.Equal(t, []string{"error_code=error", "comment_txt=later"}, names)

	var first []field.Value
	for v := range r.Values() {
		first = append(first, v)
		break
	}
	assert.Len(t, first, 1)
}

func TestRender(t *testing.T) {
	testlog.Start(t)

	r, err := leadSchema(t).New()
	require.NoError(t, err)

	assert.Equal(t, "LeadFormat(error_code=error, comment_txt=<null>)", r.String())
	assert.Equal(t, []string{"error", ""}, r.Strings(""))
	assert.Same(t, r.Schema(), r.Clone().Schema())
}

func TestSnapshotRestore(t *testing.T) {
	testlog.Start(t)

	r, err := testFormat(t).New(Named("five", 5), Named("seven", "42"))
	require.NoError(t, err)

	snap := r.Snapshot()
	before := r.Strings("")

	require.NoError(t, r.Set("five", 6))
	require.NoError(t, r.Set("one", "changed"))
	edited := r.Snapshot()
	edited[0] = field.Text("edited")
	assert.Equal(t, field.Text("changed"), mustGet(t, r, "one"), "snapshot is a copy")

	require.NoError(t, r.Restore(snap))
	assert.Equal(t, before, r.Strings(""))

	bad := r.Snapshot()
	bad[0] = field.Text("first")
	bad[5] = field.Text("abc")
	assert.Error(t, r.Restore(bad))
	assert.Equal(t, before, r.Strings(""), "failed restore changes nothing")

	assert.Error(t, r.Restore(snap[:3]))
}

func TestCloneEqual(t *testing.T) {
	testlog.Start(t)

	lead := leadSchema(t)

	a, err := lead.New(Named("comment_txt", "x"))
	require.NoError(t, err)

	b := a.Clone()
	assert.True(t, a.Equal(b), spew.Sdump(a.Snapshot(), b.Snapshot()))

	require.NoError(t, b.Set("comment_txt", "y"))
	assert.False(t, a.Equal(b))
	assert.Equal(t, field.Text("x"), mustGet(t, a, "comment_txt"), "clone is independent")

	other, err := leadSchema(t).New(Named("comment_txt", "x"))
	require.NoError(t, err)
	assert.False(t, a.Equal(other), "records of different types are never equal")

	var none *Record
	assert.True(t, none.Equal(nil))
	assert.False(t, a.Equal(nil))
}

func TestCoercionIsIdempotentThroughRecord(t *testing.T) {
	testlog.Start(t)

	s := testFormat(t)

	r, err := s.New(
		Named("three", 12),
		Named("five", "  42 "),
		Named("seven", "123"),
		Named("eight", "Yes please"),
		Named("stripped", "  x "),
	)
	require.NoError(t, err)

	raw := lo.Map(r.Snapshot(), func(v field.Value, _ int) any { return v })
	reloaded, err := s.New(Positional(raw...))
	require.NoError(t, err)
	assert.True(t, r.Equal(reloaded), spew.Sdump(r.Strings("<null>"), reloaded.Strings("<null>")))
}

