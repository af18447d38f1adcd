package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  ConstituencyHeader
		match bool
	}{
		{
			name:  "standard banner",
			text:  "Constituency: 12 . Vijayawada ( Total Electors 1500000)",
			want:  ConstituencyHeader{Number: 12, Name: "Vijayawada", Electors: 1500000},
			match: true,
		},
		{
			name:  "trailing space before paren",
			text:  "Constituency: 1 . Araku ( Total Electors 1557153 )",
			want:  ConstituencyHeader{Number: 1, Name: "Araku", Electors: 1557153},
			match: true,
		},
		{
			name:  "tight spacing",
			text:  "Constituency:22.Kurnool(Total Electors 1757287)",
			want:  ConstituencyHeader{Number: 22, Name: "Kurnool", Electors: 1757287},
			match: true,
		},
		{
			name:  "name with qualifier parens",
			text:  "Constituency: 1 . Araku (ST) ( Total Electors 1557153 )",
			want:  ConstituencyHeader{Number: 1, Name: "Araku (ST)", Electors: 1557153},
			match: true,
		},
		{
			name: "banner embedded in page text",
			text: "Election Commission of India\n" +
				"Constituency: 7 . Srikakulam ( Total Electors 1620143 )\n" +
				"Detailed Result",
			want:  ConstituencyHeader{Number: 7, Name: "Srikakulam", Electors: 1620143},
			match: true,
		},
		{
			name: "first banner wins",
			text: "Constituency: 3 . Anakapalle ( Total Electors 100 )\n" +
				"Constituency: 4 . Kakinada ( Total Electors 200 )",
			want:  ConstituencyHeader{Number: 3, Name: "Anakapalle", Electors: 100},
			match: true,
		},
		{
			name:  "no keyword",
			text:  "Total Electors 1500000",
			match: false,
		},
		{
			name:  "empty text",
			text:  "",
			match: false,
		},
		{
			name:  "missing electors clause",
			text:  "Constituency: 12 . Vijayawada",
			match: false,
		},
		{
			name:  "number overflows int",
			text:  "Constituency: 99999999999999999999 . Nowhere ( Total Electors 5 )",
			match: false,
		},
		{
			name:  "electors overflow int",
			text:  "Constituency: 5 . Nowhere ( Total Electors 99999999999999999999 )",
			match: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseHeader(tt.text)
			assert.Equal(t, tt.match, ok)
			if tt.match {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
