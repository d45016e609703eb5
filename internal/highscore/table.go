// Package highscore keeps the top-5 score table and its on-disk format.
//
// The file holds exactly one "<name> : <score>" line per entry, best first.
package highscore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Size is the number of entries in a table.
const Size = 5

// Placeholder is the name of an unclaimed slot.
const Placeholder = "---"

// separator splits name and score on a line.
const separator = " : "

// ErrMalformed is returned for a score file line that does not parse.
var ErrMalformed = errors.New("highscore: malformed score file")

// Entry is one row of the table.
type Entry struct {
	Name  string
	Score int
}

// Table is the fixed-size score list, sorted by score descending.
type Table [Size]Entry

// Default returns a table of placeholder entries.
func Default() Table {
	var t Table
	for i := range t {
		t[i] = Entry{Name: Placeholder}
	}
	return t
}

// Parse reads a score file. Blank lines are ignored, missing entries are
// filled with placeholders and lines past Size are dropped. The result is
// sorted so a hand-edited file still yields a valid table.
func Parse(r io.Reader) (Table, error) {
	t := Default()
	sc := bufio.NewScanner(r)
	n, lineNo := 0, 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if n == Size {
			break
		}

		i := strings.LastIndex(line, separator)
		if i < 0 {
			return Default(), fmt.Errorf("%w: line %d: missing %q", ErrMalformed, lineNo, separator)
		}
		score, err := strconv.Atoi(strings.TrimSpace(line[i+len(separator):]))
		if err != nil || score < 0 {
			return Default(), fmt.Errorf("%w: line %d: bad score", ErrMalformed, lineNo)
		}
		name := strings.TrimSpace(line[:i])
		if name == "" {
			name = Placeholder
		}
		t[n] = Entry{Name: name, Score: score}
		n++
	}
	if err := sc.Err(); err != nil {
		return Default(), fmt.Errorf("highscore: read: %w", err)
	}

	sort.SliceStable(t[:], func(i, j int) bool { return t[i].Score > t[j].Score })
	return t, nil
}

// Format writes the table in file format.
func (t Table) Format(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range t {
		if _, err := fmt.Fprintf(bw, "%s%s%d\n", e.Name, separator, e.Score); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Qualifies reports whether score beats the last entry.
func (t Table) Qualifies(score int) bool {
	return score > t[Size-1].Score
}

// Insert places the entry at its rank and drops the last one. It returns
// the rank, or -1 when the score does not qualify. Equal scores rank below
// existing entries.
func (t *Table) Insert(name string, score int) int {
	if !t.Qualifies(score) {
		return -1
	}
	rank := Size - 1
	for rank > 0 && t[rank-1].Score < score {
		rank--
	}
	copy(t[rank+1:], t[rank:Size-1])
	t[rank] = Entry{Name: name, Score: score}
	return rank
}

// SanitizeName keeps printable characters, trims surrounding space and
// bounds the length to maxLen runes. An empty result becomes Placeholder.
func SanitizeName(name string, maxLen int) string {
	var b strings.Builder
	n := 0
	for _, r := range name {
		if maxLen > 0 && n >= maxLen {
			break
		}
		if !unicode.IsPrint(r) {
			continue
		}
		b.WriteRune(r)
		n++
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return Placeholder
	}
	return out
}
