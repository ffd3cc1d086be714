package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brandt-snhu/CS499-Portfolio/internal/freq"
)

func loadTable(t *testing.T, input string) *freq.Table {
	t.Helper()
	table, err := freq.Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("load table: %v", err)
	}
	return table
}

func TestWriteListing(t *testing.T) {
	table := loadTable(t, "Apple Banana Apple Orange Banana Apple")

	var buf bytes.Buffer
	require.NoError(t, WriteListing(&buf, table))
	require.Equal(t, "Apple: 3\nBanana: 2\nOrange: 1\n", buf.String())
}

func TestWriteHistogram(t *testing.T) {
	table := loadTable(t, "Apple Banana Apple Orange Banana Apple")

	var buf bytes.Buffer
	require.NoError(t, WriteHistogram(&buf, table, DefaultMarker))
	require.Equal(t, "Apple: ***\nBanana: **\nOrange: *\n", buf.String())
}

func TestWriteHistogramCustomMarker(t *testing.T) {
	table := loadTable(t, "Apple Apple")

	var buf bytes.Buffer
	require.NoError(t, WriteHistogram(&buf, table, "#"))
	require.Equal(t, "Apple: ##\n", buf.String())
}

func TestWriteHistogramZeroCount(t *testing.T) {
	table := loadTable(t, "Apple")
	table.Lookup("Pear")

	var buf bytes.Buffer
	require.NoError(t, WriteHistogram(&buf, table, ""))
	require.Equal(t, "Apple: *\nPear: \n", buf.String())
}

func TestListingAndHistogramShareOrder(t *testing.T) {
	table := loadTable(t, "pear Apple banana Banana Apple")

	var listing, histogram bytes.Buffer
	require.NoError(t, WriteListing(&listing, table))
	require.NoError(t, WriteHistogram(&histogram, table, DefaultMarker))

	names := func(out string) []string {
		var got []string
		for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
			got = append(got, strings.SplitN(line, ":", 2)[0])
		}
		return got
	}
	require.Equal(t, names(listing.String()), names(histogram.String()))
	require.Len(t, names(listing.String()), table.Len())
}

func TestExportRoundTrip(t *testing.T) {
	table := loadTable(t, "Apple Banana Apple Orange Banana Apple")
	table.Lookup("Pear")

	path := filepath.Join(t.TempDir(), "frequency.dat")
	require.NoError(t, Export(path, table))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "Apple 3\nBanana 2\nOrange 1\nPear 0\n", string(data))

	counts, err := ParseExport(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, map[string]int{"Apple": 3, "Banana": 2, "Orange": 1, "Pear": 0}, counts)
}

func TestExportOverwritesPriorContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frequency.dat")
	if err := os.WriteFile(path, []byte("Stale 99\nLeftover 1\n"), 0o644); err != nil {
		t.Fatalf("seed prior export: %v", err)
	}

	require.NoError(t, Export(path, loadTable(t, "Apple")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "Apple 1\n", string(data))
}

func TestExportUnwritablePath(t *testing.T) {
	err := Export(filepath.Join(t.TempDir(), "no", "such", "dir", "frequency.dat"), loadTable(t, "Apple"))
	if err == nil {
		t.Fatalf("expected error for unwritable export path")
	}
}

func TestParseExportMalformed(t *testing.T) {
	for _, in := range []string{"Apple\n", "Apple one\n", "Apple 1 extra\n"} {
		if _, err := ParseExport(strings.NewReader(in)); err == nil {
			t.Fatalf("expected parse error for %q", in)
		}
	}
}
