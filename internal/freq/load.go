package freq

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Load tokenizes r on whitespace and tallies every token in source order.
func Load(r io.Reader) (*Table, error) {
	t := NewTable()
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		t.Add(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("freq: scan input: %w", err)
	}
	return t, nil
}

// LoadFile builds a table from the input artifact at path. Either the
// whole file is consumed or an error is returned; there is no
// partial-success mode.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("freq: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}
