package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/cv/flt/flights"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatResult(t *testing.T) {
	tests := []struct {
		name    string
		a, b    string
		explain bool
		want    string
	}{
		{
			name: "equal",
			a:    "AFL1", b: "AFL0001",
			want: "Codes: AFL1 and AFL0001 - equal\n",
		},
		{
			name: "not equal",
			a:    "AB 123", b: "ab 123",
			want: "Codes: AB 123 and ab 123 - not equal\n",
		},
		{
			name: "explain equal",
			a:    "AFL1", b: "AFL0001", explain: true,
			want: "Codes: AFL1 and AFL0001 - equal (equal: AFL1 = AFL1)\n",
		},
		{
			name: "explain mismatch",
			a:    "ABC 225", b: "ABC 123", explain: true,
			want: "Codes: ABC 225 and ABC 123 - not equal (mismatch: ABC225 != ABC123)\n",
		},
		{
			name: "explain rejected",
			a:    "ABC", b: "ABC0007", explain: true,
			want: "Codes: ABC and ABC0007 - not equal (invalid-number)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := flights.Explain(tt.a, tt.b)
			assert.Equal(t, tt.want, FormatResult(&r, tt.explain))
		})
	}
}

func TestShow_Text(t *testing.T) {
	var buf bytes.Buffer
	err := Show(&buf, flights.Explain("D2 25", "D225"), Options{})
	require.NoError(t, err)
	assert.Equal(t, "Codes: D2 25 and D225 - equal\n", buf.String())
}

func TestShowAll_JSON(t *testing.T) {
	results := []flights.Result{
		flights.Explain("AFL1", "AFL0001"),
		flights.Explain("ABC", "ABC0007"),
	}

	var buf bytes.Buffer
	require.NoError(t, ShowAll(&buf, results, Options{Format: FormatJSON}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var got []Row
	for _, line := range lines {
		var row Row
		require.NoError(t, json.Unmarshal([]byte(line), &row))
		got = append(got, row)
	}

	want := []Row{
		{A: "AFL1", B: "AFL0001", Equal: true, Reason: "equal", KeyA: "AFL1", KeyB: "AFL1"},
		{A: "ABC", B: "ABC0007", Equal: false, Reason: "invalid-number"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("json rows mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, lines[0], `"key_a":"AFL1"`)
}

func TestShowAll_CSV(t *testing.T) {
	results := []flights.Result{
		flights.Explain("AB 123", "ab 123"),
		flights.Explain("007", "00007"),
	}

	var buf bytes.Buffer
	require.NoError(t, ShowAll(&buf, results, Options{Format: FormatCSV}))

	want := "a,b,equal,reason,key_a,key_b\n" +
		"AB 123,ab 123,false,invalid-code,,\n" +
		"007,00007,true,equal,7,7\n"
	assert.Equal(t, want, buf.String())
}

func TestShowAll_CSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ShowAll(&buf, nil, Options{Format: FormatCSV}))
	assert.Equal(t, "a,b,equal,reason,key_a,key_b\n", buf.String())
}

func TestShowAll_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := ShowAll(&buf, []flights.Result{flights.Explain("AFL1", "AFL1")}, Options{Format: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
	assert.Empty(t, buf.String())
}
