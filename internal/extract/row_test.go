package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validRow returns a fresh 15-cell candidate row in source table order
func validRow() []string {
	return []string{
		"1",                  // serial
		"GUMMA THANUJA RANI", // name
		"F",                  // gender
		"34",                 // age
		"ST",                 // category
		"YSRCP",              // party
		"Ceiling Fan",        // symbol
		"4,77,005",           // total votes polled
		"4,70,000",           // valid votes
		"4,69,000",           // votes general
		"1,000",              // votes postal
		"4,70,000",           // votes total
		"30.63",              // over total electors
		"98.53",              // over total votes polled
		"99.99",              // over total valid votes
	}
}

func TestParseRow_Valid(t *testing.T) {
	c, ok := ParseRow(validRow())
	require.True(t, ok)

	require.NotNil(t, c.SerialNumber)
	assert.Equal(t, 1, *c.SerialNumber)
	assert.Equal(t, "GUMMA THANUJA RANI", c.CandidateName)
	assert.Equal(t, "F", c.Gender)
	require.NotNil(t, c.Age)
	assert.Equal(t, 34, *c.Age)
	assert.Equal(t, "ST", c.Category)
	assert.Equal(t, "YSRCP", c.Party)
	assert.Equal(t, "Ceiling Fan", c.Symbol)

	require.NotNil(t, c.TotalVotesPolled)
	assert.Equal(t, 477005, *c.TotalVotesPolled)
	require.NotNil(t, c.ValidVotes)
	assert.Equal(t, 470000, *c.ValidVotes)
	assert.Equal(t, VotesSecured{General: 469000, Postal: 1000, Total: 470000}, c.VotesSecured)

	require.NotNil(t, c.PercentageOfVotes.OverTotalElectors)
	assert.InDelta(t, 30.63, *c.PercentageOfVotes.OverTotalElectors, 1e-9)
	require.NotNil(t, c.PercentageOfVotes.OverTotalVotesPolled)
	assert.InDelta(t, 98.53, *c.PercentageOfVotes.OverTotalVotesPolled, 1e-9)
	require.NotNil(t, c.PercentageOfVotes.OverTotalValidVotes)
	assert.InDelta(t, 99.99, *c.PercentageOfVotes.OverTotalValidVotes, 1e-9)
}

func TestParseRow_Rejections(t *testing.T) {
	tests := []struct {
		name string
		row  []string
	}{
		{
			name: "nil row",
			row:  nil,
		},
		{
			name: "nine cells",
			row:  validRow()[:9],
		},
		{
			name: "thirteen cells misses required percent column",
			row:  validRow()[:13],
		},
		{
			name: "serial marker SL",
			row:  withCell(validRow(), 0, "SL"),
		},
		{
			name: "serial marker SL NO mixed case",
			row:  withCell(validRow(), 0, "Sl No"),
		},
		{
			name: "total footer row",
			row:  withCell(validRow(), 0, " TOTAL "),
		},
		{
			name: "empty first cell",
			row:  withCell(validRow(), 0, ""),
		},
		{
			name: "whitespace first cell",
			row:  withCell(validRow(), 0, "   "),
		},
		{
			name: "garbage percent cell",
			row:  withCell(validRow(), 12, "abc%"),
		},
		{
			name: "garbage optional percent cell",
			row:  withCell(validRow(), 14, "n/a"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseRow(tt.row)
			assert.False(t, ok)
		})
	}
}

func TestParseRow_FourteenCells(t *testing.T) {
	c, ok := ParseRow(validRow()[:14])
	require.True(t, ok)
	assert.NotNil(t, c.PercentageOfVotes.OverTotalElectors)
	assert.NotNil(t, c.PercentageOfVotes.OverTotalVotesPolled)
	assert.Nil(t, c.PercentageOfVotes.OverTotalValidVotes)
}

func TestParseRow_Coercions(t *testing.T) {
	t.Run("newlines in name and symbol collapse to spaces", func(t *testing.T) {
		row := withCell(validRow(), 1, "  PILLI\nSUBHASH\nCHANDRA BOSE ")
		row = withCell(row, 6, "Two\nLeaves")
		c, ok := ParseRow(row)
		require.True(t, ok)
		assert.Equal(t, "PILLI SUBHASH CHANDRA BOSE", c.CandidateName)
		assert.Equal(t, "Two Leaves", c.Symbol)
	})

	t.Run("non-numeric serial keeps row but leaves serial absent", func(t *testing.T) {
		c, ok := ParseRow(withCell(validRow(), 0, "NOTA"))
		require.True(t, ok)
		assert.Nil(t, c.SerialNumber)
	})

	t.Run("non-numeric age is absent", func(t *testing.T) {
		c, ok := ParseRow(withCell(validRow(), 3, "N/A"))
		require.True(t, ok)
		assert.Nil(t, c.Age)
	})

	t.Run("comma separated vote counts parse", func(t *testing.T) {
		c, ok := ParseRow(withCell(validRow(), 7, "12,345"))
		require.True(t, ok)
		require.NotNil(t, c.TotalVotesPolled)
		assert.Equal(t, 12345, *c.TotalVotesPolled)
	})

	t.Run("non-numeric vote count is absent", func(t *testing.T) {
		c, ok := ParseRow(withCell(validRow(), 8, "Uncontested"))
		require.True(t, ok)
		assert.Nil(t, c.ValidVotes)
	})

	t.Run("non-numeric secured votes default to zero", func(t *testing.T) {
		row := withCell(validRow(), 9, "-")
		row = withCell(row, 10, "")
		c, ok := ParseRow(row)
		require.True(t, ok)
		assert.Equal(t, 0, c.VotesSecured.General)
		assert.Equal(t, 0, c.VotesSecured.Postal)
		assert.Equal(t, 470000, c.VotesSecured.Total)
	})

	t.Run("dash percent is absent not zero", func(t *testing.T) {
		c, ok := ParseRow(withCell(validRow(), 13, "-"))
		require.True(t, ok)
		assert.Nil(t, c.PercentageOfVotes.OverTotalVotesPolled)
		assert.NotNil(t, c.PercentageOfVotes.OverTotalElectors)
	})

	t.Run("blank percent is absent", func(t *testing.T) {
		c, ok := ParseRow(withCell(validRow(), 12, "  "))
		require.True(t, ok)
		assert.Nil(t, c.PercentageOfVotes.OverTotalElectors)
	})

	t.Run("percent sign stripped from value", func(t *testing.T) {
		c, ok := ParseRow(withCell(validRow(), 12, "45.67%"))
		require.True(t, ok)
		require.NotNil(t, c.PercentageOfVotes.OverTotalElectors)
		assert.InDelta(t, 45.67, *c.PercentageOfVotes.OverTotalElectors, 1e-9)
	})

	t.Run("negative percent keeps its sign", func(t *testing.T) {
		c, ok := ParseRow(withCell(validRow(), 12, "-0.5"))
		require.True(t, ok)
		require.NotNil(t, c.PercentageOfVotes.OverTotalElectors)
		assert.InDelta(t, -0.5, *c.PercentageOfVotes.OverTotalElectors, 1e-9)
	})
}

func TestParseOptionalInt(t *testing.T) {
	tests := []struct {
		cell string
		want *int
	}{
		{cell: "42", want: intPtr(42)},
		{cell: " 42 ", want: intPtr(42)},
		{cell: "", want: nil},
		{cell: "4.2", want: nil},
		{cell: "-42", want: nil},
		{cell: "12,345", want: nil},
		{cell: "abc", want: nil},
		{cell: "99999999999999999999", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			assert.Equal(t, tt.want, parseOptionalInt(tt.cell))
		})
	}
}

func TestParseCommaInt(t *testing.T) {
	tests := []struct {
		cell string
		want *int
	}{
		{cell: "12,345", want: intPtr(12345)},
		{cell: "4,77,005", want: intPtr(477005)},
		{cell: "500", want: intPtr(500)},
		{cell: ",", want: nil},
		{cell: "12.3", want: nil},
		{cell: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			assert.Equal(t, tt.want, parseCommaInt(tt.cell))
		})
	}
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		name    string
		cell    string
		want    *float64
		wantErr bool
	}{
		{name: "plain", cell: "30.63", want: floatPtr(30.63)},
		{name: "with percent sign", cell: "30.63%", want: floatPtr(30.63)},
		{name: "with comma", cell: "1,000.5", want: floatPtr(1000.5)},
		{name: "dash", cell: "-", want: nil},
		{name: "empty", cell: "", want: nil},
		{name: "whitespace", cell: "  ", want: nil},
		{name: "dash percent combo", cell: " -% ", want: nil},
		{name: "negative value", cell: "-1.5", want: floatPtr(-1.5)},
		{name: "garbage", cell: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePercent(tt.cell)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.InDelta(t, *tt.want, *got, 1e-9)
			}
		})
	}
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "A B", cleanText(" A\nB "))
	assert.Equal(t, "", cleanText("  \n "))
	assert.Equal(t, "plain", cleanText("plain"))
}

// withCell copies row and replaces one cell
func withCell(row []string, idx int, value string) []string {
	out := make([]string, len(row))
	copy(out, row)
	out[idx] = value
	return out
}

func intPtr(n int) *int {
	return &n
}

func floatPtr(f float64) *float64 {
	return &f
}
