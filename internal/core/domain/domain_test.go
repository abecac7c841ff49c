package domain

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCents(t *testing.T) {
	cases := map[int64]string{
		0:             "$0",
		12000000:      "$120,000",
		10000000:      "$100,000",
		125050:        "$1,250.50",
		5:             "$0.05",
		-400000000:    "-$4,000,000",
		math.MaxInt64: "$92,233,720,368,547,758.07",
		math.MinInt64: "-$92,233,720,368,547,758.08",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatCents(in), "cents %d", in)
	}
}

func TestCentsRounding(t *testing.T) {
	assert.Equal(t, int64(10), Cents(0.1))
	assert.Equal(t, int64(30), Cents(0.1+0.2))
	assert.Equal(t, int64(400000), Cents(4000))
	assert.Equal(t, int64(101), Cents(1.005+0.0000001))
}

func TestCentsSaturates(t *testing.T) {
	assert.Equal(t, int64(math.MaxInt64), Cents(1e300))
	assert.Equal(t, int64(math.MaxInt64), Cents(math.Inf(1)))
	assert.Equal(t, int64(math.MinInt64), Cents(-1e300))
	assert.Equal(t, int64(0), Cents(math.NaN()))
}

func TestSpendCents(t *testing.T) {
	cases := []struct {
		daily float64
		days  int
		want  int64
		ok    bool
	}{
		{4000, 30, 12000000, true},
		{0, 1000, 0, true},
		{1e15, 1000, math.MaxInt64, false},
		{4000, 23058430092137, math.MaxInt64, false},
		{1e300, 30, math.MaxInt64, false},
	}
	for _, tc := range cases {
		got, ok := SpendCents(tc.daily, tc.days)
		assert.Equal(t, tc.ok, ok, "%v x %d", tc.daily, tc.days)
		assert.Equal(t, tc.want, got, "%v x %d", tc.daily, tc.days)
	}
}

func TestExactMatchesIsCaseSensitive(t *testing.T) {
	got := ExactMatches([]string{"Horror", "horror", "Comedy", "Slasher"}, []string{"Horror", "Zombies"})
	assert.Equal(t, []string{"Horror"}, got)
	assert.Empty(t, ExactMatches([]string{"Slasher"}, []string{"Horror"}))
}

func TestScanKeywords(t *testing.T) {
	got := ScanKeywords("Get 50% DISCOUNT on cheap shoes now!", []string{"Cheap", "Discount", "Free", " "})
	assert.Equal(t, []string{"Cheap", "Discount"}, got)
	assert.Empty(t, ScanKeywords("", []string{"Cheap"}))
}

func TestOutside(t *testing.T) {
	assert.Equal(t, []string{"UK"}, Outside([]string{"USA", "UK"}, []string{"USA"}))
	assert.Empty(t, Outside(nil, []string{"USA"}))
}

func TestDateJSON(t *testing.T) {
	var ts TimeframeSettings
	require.NoError(t, json.Unmarshal([]byte(`{"start_date":"2026-02-09","end_date":""}`), &ts))
	assert.Equal(t, "2026-02-09", ts.StartDate.String())
	assert.True(t, ts.EndDate.IsZero())

	out, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start_date":"2026-02-09","end_date":""}`, string(out))

	err = json.Unmarshal([]byte(`{"start_date":"09/02/2026"}`), &ts)
	assert.Error(t, err)
	err = json.Unmarshal([]byte(`{"start_date":20260209}`), &ts)
	assert.Error(t, err)
}

func TestCampaignValidate(t *testing.T) {
	valid := func() *Campaign {
		return &Campaign{
			Name:      "c",
			Timeframe: TimeframeSettings{StartDate: NewDate(2026, 2, 9)},
			Budget:    BudgetSettings{DailyBudget: 10, TotalDays: 1},
		}
	}
	require.NoError(t, valid().Validate())

	cases := []struct {
		mutate  func(c *Campaign)
		section string
	}{
		{func(c *Campaign) { c.Name = "" }, ""},
		{func(c *Campaign) { c.Status = "PAUSED" }, ""},
		{func(c *Campaign) { c.Budget.TotalDays = 0 }, "budget"},
		{func(c *Campaign) { c.Budget.DailyBudget = -1 }, "budget"},
		{func(c *Campaign) { c.Budget.DailyBudget = 1e17 }, "budget"},
		{func(c *Campaign) { c.Budget.DailyBudget = math.Inf(1) }, "budget"},
		{func(c *Campaign) { c.Budget.DailyBudget = math.NaN() }, "budget"},
		{func(c *Campaign) { c.Timeframe.StartDate = Date{} }, "timeframe"},
		{func(c *Campaign) { c.Timeframe.EndDate = NewDate(2026, 2, 1) }, "timeframe"},
	}
	for _, tc := range cases {
		c := valid()
		tc.mutate(c)
		err := c.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrValidation))
		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, tc.section, ve.Section)
	}
}
