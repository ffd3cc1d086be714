// Package menu drives the interactive query loop over a loaded frequency
// table. The loop is an explicit two-state machine so it can be exercised
// against injected token streams instead of live standard input.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/brandt-snhu/CS499-Portfolio/internal/freq"
	"github.com/brandt-snhu/CS499-Portfolio/internal/report"
)

type state int

const (
	awaitingChoice state = iota
	terminated
)

// ErrInputClosed reports that the interactive stream ended before the
// export-and-exit choice.
var ErrInputClosed = errors.New("menu: input stream closed before exit choice")

// Session owns one interactive run: the loaded table, the user streams and
// the export destination. No package-level state.
type Session struct {
	table      *freq.Table
	in         *bufio.Reader
	out        io.Writer
	exportPath string
	marker     string
}

func NewSession(table *freq.Table, in io.Reader, out io.Writer, exportPath, marker string) *Session {
	return &Session{
		table:      table,
		in:         bufio.NewReader(in),
		out:        out,
		exportPath: exportPath,
		marker:     marker,
	}
}

// Run executes the state machine until the export choice terminates it.
// It returns nil only after a successful export.
func (s *Session) Run() error {
	for st := awaitingChoice; st != terminated; {
		next, err := s.step()
		if err != nil {
			return err
		}
		st = next
	}
	return nil
}

func (s *Session) step() (state, error) {
	s.printMenu()
	fmt.Fprint(s.out, "Enter your choice: ")

	tok, err := s.readToken()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return terminated, ErrInputClosed
		}
		return terminated, fmt.Errorf("menu: read choice: %w", err)
	}
	fmt.Fprintln(s.out)

	choice, convErr := strconv.Atoi(tok)
	if convErr != nil {
		// Resynchronize through the rest of the offending line.
		if err := s.resyncLine(); err != nil {
			return terminated, err
		}
		fmt.Fprintln(s.out, "Invalid input. Please enter a number.")
		return awaitingChoice, nil
	}

	switch choice {
	case 1:
		if err := s.searchItem(); err != nil {
			return terminated, err
		}
	case 2:
		if err := report.WriteListing(s.out, s.table); err != nil {
			return terminated, err
		}
	case 3:
		if err := report.WriteHistogram(s.out, s.table, s.marker); err != nil {
			return terminated, err
		}
	case 4:
		if err := report.Export(s.exportPath, s.table); err != nil {
			return terminated, err
		}
		return terminated, nil
	default:
		fmt.Fprintln(s.out, "Invalid choice. Please try again.")
	}

	fmt.Fprintln(s.out)
	return awaitingChoice, nil
}

func (s *Session) searchItem() error {
	fmt.Fprint(s.out, "Enter the item you wish to search for: ")
	item, err := s.readToken()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return ErrInputClosed
		}
		return fmt.Errorf("menu: read item: %w", err)
	}
	fmt.Fprintf(s.out, "The frequency of %s is %d\n", item, s.table.Lookup(item))
	return nil
}

// readToken skips leading whitespace and returns the next
// whitespace-delimited token. The trailing delimiter stays in the reader
// so resyncLine can still find the offending line's newline.
func (s *Session) readToken() (string, error) {
	var b strings.Builder
	for {
		r, _, err := s.in.ReadRune()
		if err != nil {
			if b.Len() > 0 && errors.Is(err, io.EOF) {
				return b.String(), nil
			}
			return "", err
		}
		if unicode.IsSpace(r) {
			if b.Len() == 0 {
				continue
			}
			if err := s.in.UnreadRune(); err != nil {
				return "", err
			}
			return b.String(), nil
		}
		b.WriteRune(r)
	}
}

// resyncLine discards input up to and including the next newline.
func (s *Session) resyncLine() error {
	if _, err := s.in.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("menu: resync input: %w", err)
	}
	return nil
}

func (s *Session) printMenu() {
	fmt.Fprintln(s.out, "-----------------------------")
	fmt.Fprintln(s.out, "| 1. Search for an item     |")
	fmt.Fprintln(s.out, "| 2. Print frequency of all |")
	fmt.Fprintln(s.out, "| 3. Print histogram        |")
	fmt.Fprintln(s.out, "| 4. Exit                   |")
	fmt.Fprintln(s.out, "-----------------------------")
}
