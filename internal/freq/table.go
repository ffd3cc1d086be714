package freq

import "sort"

/*
Package freq maintains the item frequency table built from the input
artifact.

Rules:
- Keys are whole whitespace-delimited tokens, case-sensitive, untrimmed.
- Counts are exact: a token seen N times maps to exactly N.
- Every multi-item view iterates in lexicographic key order so listing,
  histogram and export stay mutually consistent across runs.
*/

// Entry is one name/count pair in canonical order.
type Entry struct {
	Name  string
	Count int
}

// Table maps item names to occurrence counts.
type Table struct {
	counts map[string]int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{counts: make(map[string]int)}
}

// Add increments the count for name.
func (t *Table) Add(name string) {
	t.counts[name]++
}

// Lookup reports the count for name. An absent name counts as zero and
// becomes a zero-count entry of the table, matching the reference
// program's map access semantics.
func (t *Table) Lookup(name string) int {
	n, ok := t.counts[name]
	if !ok {
		t.counts[name] = 0
	}
	return n
}

// Count reports the count for name without modifying the table.
func (t *Table) Count(name string) int {
	return t.counts[name]
}

// Len reports the number of distinct names currently in the table.
func (t *Table) Len() int {
	return len(t.counts)
}

// Entries returns a snapshot of the table in canonical order.
func (t *Table) Entries() []Entry {
	names := make([]string, 0, len(t.counts))
	for name := range t.counts {
		names = append(names, name)
	}
	sort.Strings(names)
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{Name: name, Count: t.counts[name]})
	}
	return entries
}
