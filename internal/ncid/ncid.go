// Package ncid derives NC numbers. Pure functions only: the allocator reads a
// snapshot of the register history and a clock value, and mutates nothing.
package ncid

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Strategy selects how the next sequence number is derived from history.
type Strategy string

const (
	// StrategyLast filters history to NC numbers containing the current year
	// as a substring and increments the suffix of the *last* match in
	// insertion order. This reproduces the register's long-standing behavior;
	// it yields non-monotonic ids if history was ever backfilled out of
	// chronological order.
	StrategyLast Strategy = "last"

	// StrategyMax increments the maximum numeric suffix among records whose
	// year field equals the current year. Hardened alternative to
	// StrategyLast; identical output on chronological histories.
	StrategyMax Strategy = "max"
)

// Format renders an NC number from its parts: NC-<year>-<seq:04d>.
func Format(year int, seq int) string {
	return fmt.Sprintf("NC-%d-%04d", year, seq)
}

// Next returns the NC number to assign for a new record submitted at now,
// given the existing NC numbers in insertion order.
func Next(history []string, now time.Time, strategy Strategy) string {
	year := now.Year()
	if strategy == StrategyMax {
		return Format(year, maxSeqForYear(history, year)+1)
	}
	return Format(year, lastSeqForYear(history, year)+1)
}

// lastSeqForYear returns the sequence of the last history entry containing
// year as a substring, or 0 when the year has no records yet.
func lastSeqForYear(history []string, year int) int {
	needle := strconv.Itoa(year)
	last := ""
	for _, ncNo := range history {
		if strings.Contains(ncNo, needle) {
			last = ncNo
		}
	}
	if last == "" {
		return 0
	}
	_, seq, ok := Parse(last)
	if !ok {
		return 0
	}
	return seq
}

// maxSeqForYear returns the highest sequence among well-formed entries whose
// year field equals year, or 0 when the year has no records yet.
func maxSeqForYear(history []string, year int) int {
	max := 0
	for _, ncNo := range history {
		y, seq, ok := Parse(ncNo)
		if !ok || y != year {
			continue
		}
		if seq > max {
			max = seq
		}
	}
	return max
}

// Parse splits an NC number into year and sequence.
// Returns ok=false for anything not shaped NC-<year>-<seq>.
func Parse(ncNo string) (year int, seq int, ok bool) {
	parts := strings.Split(ncNo, "-")
	if len(parts) != 3 || parts[0] != "NC" {
		return 0, 0, false
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, false
	}
	return year, seq, true
}
