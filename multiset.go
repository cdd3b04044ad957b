/**
 * Copyright 2016 hll authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License"): you may
 * not use this file except in compliance with the License. You may obtain
 * a copy of the License at
 *
 *     http: *www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
 * WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
 * License for the specific language governing permissions and limitations
 * under the License.
 */

package hll

import (
	"math/bits"
	"sort"
)

// repType is the in-memory representation of a Multiset. SPARSE from the
// storage spec is deliberately absent here: it only ever exists on the
// wire, and Unpack always materializes it as Compressed.
type repType int

const (
	repUndefined repType = iota
	repEmpty
	repExplicit
	repCompressed
)

const (
	minLog2nregs = 0
	maxLog2nregs = 31
	minNbits     = 1
	maxNbits     = 8

	minExpthresh = -1
	maxExpthresh = int64(1) << 32
)

// Multiset is an adaptive HyperLogLog sketch. The zero value is not usable;
// construct one with Empty or Empty4.
type Multiset struct {
	nbits        int   // register width in bits, [1,8]
	log2nregs    int   // log2 of register count, [0,31]
	expthreshRaw int64 // -1 (auto), 0 (never explicit), or a power of two
	sparseon     bool  // whether Pack may choose SPARSE

	kind repType

	explicit  []uint64 // sorted ascending by signed int64 comparison; kind == repExplicit
	registers []byte   // len == nregs; kind == repCompressed
}

// Empty4 constructs a new EMPTY Multiset with explicit parameters, matching
// the storage spec's "empty4" constructor. log2nregs must be in [0,31] (and
// additionally small enough that nregs doesn't exceed MSMaxData, a tighter
// effective bound -- see DESIGN.md), nbits must be in [1,8], expthreshRaw
// must be -1, 0, or a power of two up to 2^32.
func Empty4(log2nregs, nbits int, expthreshRaw int64, sparseon bool) (*Multiset, error) {
	if err := validateMeta(log2nregs, nbits, expthreshRaw); err != nil {
		return nil, err
	}

	return &Multiset{
		nbits:        nbits,
		log2nregs:    log2nregs,
		expthreshRaw: expthreshRaw,
		sparseon:     sparseon,
		kind:         repEmpty,
	}, nil
}

// validateMeta checks the three parameters shared by Empty4 and Unpack:
// log2nregs, nbits, and expthreshRaw. sparseon has no invalid values.
func validateMeta(log2nregs, nbits int, expthreshRaw int64) error {
	if log2nregs < minLog2nregs || log2nregs > maxLog2nregs {
		return newError(BadParameter, "log2nregs must be between 0 and 31")
	}
	if nbits < minNbits || nbits > maxNbits {
		return newError(BadParameter, "nbits must be between 1 and 8")
	}
	if expthreshRaw < minExpthresh || expthreshRaw > maxExpthresh {
		return newError(BadParameter, "expthresh must be between -1 and 2^32")
	}
	if expthreshRaw > 0 && !isPowerOfTwo(expthreshRaw) {
		return newError(BadParameter, "expthresh must be -1, 0, or a power of two")
	}
	if nregs := 1 << uint(log2nregs); nregs > MSMaxData {
		return newError(BadParameter, "log2nregs is too large: register array would exceed MSMaxData")
	}
	return nil
}

// Empty constructs a new EMPTY Multiset using the process-wide defaults
// installed via SetDefaults (or DefaultConfig's built-in values:
// log2nregs=11, nbits=5, expthresh=-1, sparseon=true).
func Empty() (*Multiset, error) {
	cfg := Defaults()
	return Empty4(cfg.DefaultLog2nregs, cfg.DefaultNbits, cfg.DefaultExpthresh, cfg.DefaultSparseon)
}

func isPowerOfTwo(n int64) bool {
	return n > 0 && n&(n-1) == 0
}

// Nregs returns 1 << log2nregs, the number of HyperLogLog registers.
func (m *Multiset) Nregs() int { return 1 << uint(m.log2nregs) }

// Nbits returns the configured register width in bits.
func (m *Multiset) Nbits() int { return m.nbits }

// Log2nregs returns the configured log2 of the register count.
func (m *Multiset) Log2nregs() int { return m.log2nregs }

// ExpthreshRaw returns the configured explicit-list threshold setting
// (-1 for auto, 0 for disabled, or a power of two).
func (m *Multiset) ExpthreshRaw() int64 { return m.expthreshRaw }

// Sparseon reports whether Pack may choose the SPARSE wire encoding.
func (m *Multiset) Sparseon() bool { return m.sparseon }

// Representation names the current in-memory representation: "UNDEFINED",
// "EMPTY", "EXPLICIT", or "COMPRESSED".
func (m *Multiset) Representation() string {
	switch m.kind {
	case repEmpty:
		return "EMPTY"
	case repExplicit:
		return "EXPLICIT"
	case repCompressed:
		return "COMPRESSED"
	default:
		return "UNDEFINED"
	}
}

// effectiveExpthresh resolves expthreshRaw == -1 ("auto") to the largest
// explicit list that fits in the space the compressed form would occupy.
// Any other value is capped at MSMaxData/8 elements, so the EXPLICIT list
// never outgrows MSMaxData.
func (m *Multiset) effectiveExpthresh() int64 {
	if m.expthreshRaw != -1 {
		if m.expthreshRaw > MSMaxData/8 {
			return MSMaxData / 8
		}
		return m.expthreshRaw
	}
	fullRepresentationBytes := (m.nbits*m.Nregs() + 7) / 8
	return int64(fullRepresentationBytes / 8)
}

func (m *Multiset) maxRegisterValue() byte {
	return byte((1 << uint(m.nbits)) - 1)
}

// Add inserts a hashed 64-bit element into the Multiset, promoting its
// representation as needed. Adding the same element twice is a no-op,
// whether the Multiset is EXPLICIT or COMPRESSED. Add is a no-op on an
// UNDEFINED Multiset.
func (m *Multiset) Add(element uint64) {
	switch m.kind {
	case repUndefined:
		return

	case repEmpty:
		if m.effectiveExpthresh() == 0 {
			m.kind = repCompressed
			m.registers = make([]byte, m.Nregs())
			m.compressedAdd(element)
		} else {
			m.kind = repExplicit
			m.explicit = []uint64{element}
		}

	case repExplicit:
		idx, found := explicitSearch(m.explicit, element)
		if found {
			return
		}
		if int64(len(m.explicit)) == m.effectiveExpthresh() {
			m.promoteToCompressed()
			m.compressedAdd(element)
		} else {
			m.explicit = explicitInsert(m.explicit, idx, element)
		}

	case repCompressed:
		m.compressedAdd(element)
	}
}

// compressedAdd folds element into the register array. kind must already be
// repCompressed.
func (m *Multiset) compressedAdd(element uint64) {
	ndx := element & uint64(m.Nregs()-1)
	remainder := element >> uint(m.log2nregs)

	var p byte
	if remainder != 0 {
		p = byte(bits.TrailingZeros64(remainder) + 1)
	}

	if max := m.maxRegisterValue(); p > max {
		p = max
	}

	if p > m.registers[ndx] {
		m.registers[ndx] = p
	}
}

// promoteToCompressed converts an EXPLICIT Multiset to COMPRESSED, folding
// every saved element into the fresh register array.
func (m *Multiset) promoteToCompressed() {
	saved := m.explicit
	m.explicit = nil
	m.kind = repCompressed
	m.registers = make([]byte, m.Nregs())
	for _, e := range saved {
		m.compressedAdd(e)
	}
}

// explicitSearch finds v's position in a list sorted ascending by signed
// int64 comparison, per the storage spec's cross-implementation
// compatibility requirement (unsigned comparison would silently diverge for
// elements with the high bit set).
func explicitSearch(list []uint64, v uint64) (idx int, found bool) {
	sv := int64(v)
	i := sort.Search(len(list), func(i int) bool { return int64(list[i]) >= sv })
	if i < len(list) && list[i] == v {
		return i, true
	}
	return i, false
}

// signedLess orders two hashed elements by signed int64 comparison, per the
// storage spec's cross-implementation compatibility requirement.
func signedLess(a, b uint64) bool {
	return int64(a) < int64(b)
}

// explicitInsert inserts v at idx, preserving order. When the input's backing
// array has spare capacity, the elements from idx onward are shifted in place
// within it; otherwise append reallocates.
func explicitInsert(list []uint64, idx int, v uint64) []uint64 {
	list = append(list, 0)
	copy(list[idx+1:], list[idx:])
	list[idx] = v
	return list
}
