package roster

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var recordCmp = cmp.AllowUnexported(DutyRecord{})

func duty(date, flight string) DutyRecord {
	return DutyRecord{Date: date, FlightNumber: flight, DutyCode: LabelFlight}
}

func TestGroupByDate_OrderAndStability(t *testing.T) {
	input := []DutyRecord{
		duty("02/01", "a"),
		duty("01/01", "b"),
		duty("02/01", "c"),
		duty("03/01", "d"),
		duty("01/01", "e"),
	}
	g := GroupByDate(input)

	assert.Equal(t, []string{"02/01", "01/01", "03/01"}, g.Keys(), "keys keep first-seen order")
	if diff := cmp.Diff([]DutyRecord{duty("02/01", "a"), duty("02/01", "c")}, g.Get("02/01"), recordCmp); diff != "" {
		t.Errorf("bucket 02/01 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]DutyRecord{duty("01/01", "b"), duty("01/01", "e")}, g.Get("01/01"), recordCmp); diff != "" {
		t.Errorf("bucket 01/01 mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, 5, g.Total())
}

func TestGroupByDate_ConcatenationIsPermutationOfInput(t *testing.T) {
	input := loadFixture(t)
	g := GroupByDate(input)

	var flat []DutyRecord
	g.Each(func(_ string, recs []DutyRecord) {
		flat = append(flat, recs...)
	})
	require.Len(t, flat, len(input))

	// Within a key the relative input order survives.
	pos := make(map[string][]int)
	for i, rec := range input {
		pos[rec.Date] = append(pos[rec.Date], i)
	}
	for _, key := range g.Keys() {
		bucket := g.Get(key)
		require.Len(t, bucket, len(pos[key]))
		for j, rec := range bucket {
			if diff := cmp.Diff(input[pos[key][j]], rec, recordCmp); diff != "" {
				t.Errorf("key %s index %d (-want +got):\n%s", key, j, diff)
			}
		}
	}
}

func TestGroupBy_DropsMissingField(t *testing.T) {
	input := []DutyRecord{
		duty("01/01", "a"),
		duty("", "b").WithMissing(FieldDate),
		duty("", "c"),
	}
	g := GroupByDate(input)

	assert.Equal(t, []string{"01/01", ""}, g.Keys(), "empty string is a real key; missing is dropped")
	assert.Equal(t, 2, g.Total())
	for _, key := range g.Keys() {
		for _, rec := range g.Get(key) {
			assert.NotEqual(t, "b", rec.FlightNumber)
		}
	}
}

func TestGroupBy_DoesNotMutateInput(t *testing.T) {
	input := []DutyRecord{duty("01/01", "a"), duty("02/01", "b")}
	before := append([]DutyRecord(nil), input...)

	g := GroupByDate(input)
	g.Get("01/01")[0].FlightNumber = "changed"

	if diff := cmp.Diff(before, input, recordCmp); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}
}

func TestGroupBy_OtherField(t *testing.T) {
	input := []DutyRecord{
		{DutyCode: LabelFlight, Departure: "AMS"},
		{DutyCode: LabelOff, Departure: "AMS"},
		{DutyCode: LabelFlight, Departure: "MAD"},
	}
	g := GroupBy(input, FieldDutyCode)
	assert.Equal(t, []string{"FLIGHT", "OFF"}, g.Keys())
	assert.Len(t, g.Get("FLIGHT"), 2)
}

func TestGroupBy_Empty(t *testing.T) {
	g := GroupByDate(nil)
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Keys())
	assert.Nil(t, g.Get("01/01"))

	var nilGroup *Grouped
	assert.Equal(t, 0, nilGroup.Len())
	assert.Equal(t, 0, nilGroup.Total())
}

func TestGrouped_KeysIsCopy(t *testing.T) {
	g := GroupByDate([]DutyRecord{duty("01/01", "a")})
	keys := g.Keys()
	keys[0] = "tampered"
	assert.Equal(t, []string{"01/01"}, g.Keys())
}

func TestGrouped_MarshalJSONKeepsOrder(t *testing.T) {
	g := GroupByDate([]DutyRecord{
		{Date: "b"}, {Date: "a"},
	})
	data, err := json.Marshal(g)
	require.NoError(t, err)
	assert.Regexp(t, `^\{"b":\[.*\],"a":\[.*\]\}$`, string(data))
}
