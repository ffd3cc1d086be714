// Package report renders the frequency table views: full listing, bar
// histogram and the two-column export file.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/brandt-snhu/CS499-Portfolio/internal/freq"
)

// DefaultMarker is the histogram bar character used when none is configured.
const DefaultMarker = "*"

// WriteListing emits every entry as "name: count", one per line, in
// canonical order.
func WriteListing(w io.Writer, t *freq.Table) error {
	for _, e := range t.Entries() {
		if _, err := fmt.Fprintf(w, "%s: %d\n", e.Name, e.Count); err != nil {
			return fmt.Errorf("report: write listing: %w", err)
		}
	}
	return nil
}

// WriteHistogram emits every entry as "name: " followed by marker repeated
// count times. A zero count renders the name with an empty run.
func WriteHistogram(w io.Writer, t *freq.Table, marker string) error {
	if marker == "" {
		marker = DefaultMarker
	}
	for _, e := range t.Entries() {
		if _, err := fmt.Fprintf(w, "%s: %s\n", e.Name, strings.Repeat(marker, e.Count)); err != nil {
			return fmt.Errorf("report: write histogram: %w", err)
		}
	}
	return nil
}

// Export writes "name count" lines to path in canonical order,
// overwriting any prior content.
func Export(path string, t *freq.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	for _, e := range t.Entries() {
		if _, err := fmt.Fprintf(f, "%s %d\n", e.Name, e.Count); err != nil {
			f.Close()
			return fmt.Errorf("report: write %s: %w", path, err)
		}
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("report: close %s: %w", path, err)
	}
	return nil
}

// ParseExport reads an export stream back into a name-to-count mapping.
func ParseExport(r io.Reader) (map[string]int, error) {
	counts := make(map[string]int)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("report: malformed export line %q", line)
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("report: malformed count in line %q: %w", line, err)
		}
		counts[fields[0]] = n
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("report: scan export: %w", err)
	}
	return counts, nil
}
