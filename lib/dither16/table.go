// Copyright 2026 The Dither16 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package dither16

const (
	gridSize  = 8
	gridCells = gridSize * gridSize

	maxTableLen = 4
)

// Count is the number of grid cells given to one palette colour.
type Count struct {
	Code Code
	N    int
}

// Table lists how many of the 64 cells each palette colour receives. It holds
// at most four entries.
type Table struct {
	entries [maxTableLen]Count
	n       int
}

func (t *Table) Len() int         { return t.n }
func (t *Table) Entries() []Count { return t.entries[:t.n] }

// At returns the i'th entry. It panics if i is outside [0, Len()).
func (t *Table) At(i int) Count { return t.entries[:t.n][i] }

// Total returns the sum of the entries' counts.
func (t *Table) Total() (total int) {
	for _, e := range t.entries[:t.n] {
		total += e.N
	}
	return total
}

// appendNonZero adds an entry unless n is zero.
func (t *Table) appendNonZero(code Code, n int) {
	if n == 0 {
		return
	}
	t.entries[t.n] = Count{Code: code, N: n}
	t.n++
}

// buildTable turns a subspace and its three vertex counts into a table whose
// first entry is the origin vertex, which takes whatever the others leave.
func buildTable(s Subspace, c [3]int) (t Table) {
	v := &vertices[s]
	t.appendNonZero(v[0], gridCells-c[0]-c[1]-c[2])
	t.appendNonZero(v[1], c[0])
	t.appendNonZero(v[2], c[1])
	t.appendNonZero(v[3], c[2])
	return t
}

// restoreCodes undoes the normalization swaps on every entry.
func (t *Table) restoreCodes(f SwapFlags) {
	for i := range t.entries[:t.n] {
		t.entries[i].Code = restore(t.entries[i].Code, f)
	}
}

// sortByIntensity orders the entries from darkest to brightest. Codes within
// one table are distinct, so the order is total.
func (t *Table) sortByIntensity() {
	e := t.entries[:t.n]
	for i := 1; i < len(e); i++ {
		for j := i; (j > 0) && (intensityRank[e[j].Code] < intensityRank[e[j-1].Code]); j-- {
			e[j], e[j-1] = e[j-1], e[j]
		}
	}
}

// settle rewrites the counts of a sorted table so that each is the number of
// cells that the entry actually claims during mapping.
//
// Near the Subspace2 boundary the fixed-point transform can yield a count of
// -1 offset by an extra +1 elsewhere. Mapping with running cumulative totals
// then never revisits a cell, so the effective thresholds are the running
// maximum of those totals, capped at 64. Recording that here keeps every
// count positive and the total at 64 without changing a single cell.
func (t *Table) settle() {
	cumulative, claimed, n := 0, 0, 0
	for _, e := range t.entries[:t.n] {
		cumulative += e.N
		if reach := min(gridCells, max(claimed, cumulative)); reach > claimed {
			t.entries[n] = Count{Code: e.Code, N: reach - claimed}
			claimed = reach
			n++
		}
	}
	t.n = n
}

// intensityRank orders the palette codes from darkest to brightest. Code 0x08
// never appears in a table.
var intensityRank = [16]int8{
	0x00: 1,
	0x01: 3,
	0x02: 4,
	0x03: 7,
	0x04: 2,
	0x05: 5,
	0x06: 6,
	0x07: 8,
	0x08: -1,
	0x09: 10,
	0x0A: 11,
	0x0B: 14,
	0x0C: 9,
	0x0D: 12,
	0x0E: 13,
	0x0F: 15,
}
