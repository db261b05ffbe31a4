// Package puzzles ships sample puzzle collections from Peter Norvig's
// http://norvig.com/sudoku.html, one 81-character symbols string per line.
package puzzles

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"strings"
)

//go:embed data/*.txt
var assets embed.FS

// Set names the embedded collections.
type Set string

const (
	Easy50  Set = "easy50"
	Top95   Set = "top95"
	Hardest Set = "hardest"
)

// Sets lists the available collections.
func Sets() []Set { return []Set{Easy50, Top95, Hardest} }

// Load returns every puzzle in the named collection.
func Load(set Set) ([]string, error) {
	data, err := assets.ReadFile("data/" + string(set) + ".txt")
	if err != nil {
		return nil, fmt.Errorf("unknown puzzle set %q", set)
	}
	var out []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			out = append(out, line)
		}
	}
	return out, sc.Err()
}

// Pick returns puzzle n (0-based) of the named collection.
func Pick(set Set, n int) (string, error) {
	all, err := Load(set)
	if err != nil {
		return "", err
	}
	if n < 0 || n >= len(all) {
		return "", fmt.Errorf("puzzle index %d out of range for %s (%d puzzles)", n, set, len(all))
	}
	return all[n], nil
}
