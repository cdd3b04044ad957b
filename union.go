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

import "sort"

// Union folds src into dst (the receiver), mutating dst in place; src is
// read-only. The rules, evaluated in order, match the storage spec:
//
//  1. Either side UNDEFINED makes dst UNDEFINED (absorbing, not an error).
//  2. src EMPTY leaves dst unchanged.
//  3. dst EMPTY becomes a deep copy of src.
//  4. Both EXPLICIT: batch-insert src's elements into dst, promoting dst to
//     COMPRESSED mid-batch if its explicit threshold is reached.
//  5. dst EXPLICIT, src COMPRESSED: dst becomes a copy of src's registers
//     with dst's explicit elements folded in.
//  6. dst COMPRESSED, src EXPLICIT: src's elements are folded into dst's
//     registers directly.
//  7. Both COMPRESSED: registers are combined with a per-slot maximum.
//
// Once rules 1 and 2 have been applied, a union between Multisets whose
// nbits, nregs, expthreshRaw, or sparseon settings differ returns
// ErrIncompatible, leaving dst unchanged.
func (m *Multiset) Union(src *Multiset) error {
	if m.kind == repUndefined || src.kind == repUndefined {
		m.becomeUndefined()
		return nil
	}

	if src.kind == repEmpty {
		return nil
	}

	if !m.compatibleWith(src) {
		return ErrIncompatible
	}

	if m.kind == repEmpty {
		m.copyFrom(src)
		return nil
	}

	switch {
	case m.kind == repExplicit && src.kind == repExplicit:
		m.unionExplicitExplicit(src)

	case m.kind == repExplicit && src.kind == repCompressed:
		m.unionExplicitCompressed(src)

	case m.kind == repCompressed && src.kind == repExplicit:
		for _, e := range src.explicit {
			m.compressedAdd(e)
		}

	case m.kind == repCompressed && src.kind == repCompressed:
		if len(m.registers) != len(src.registers) {
			return ErrIncompatible
		}
		for i := range m.registers {
			if src.registers[i] > m.registers[i] {
				m.registers[i] = src.registers[i]
			}
		}
	}

	return nil
}

// compatibleWith reports whether m and other share the settings the union
// rules require to be combined: nbits, log2nregs, expthreshRaw, sparseon.
func (m *Multiset) compatibleWith(other *Multiset) bool {
	return m.nbits == other.nbits &&
		m.log2nregs == other.log2nregs &&
		m.expthreshRaw == other.expthreshRaw &&
		m.sparseon == other.sparseon
}

func (m *Multiset) becomeUndefined() {
	m.kind = repUndefined
	m.explicit = nil
	m.registers = nil
}

// copyFrom deep-copies other's representation and payload into m, leaving
// m's own metadata (nbits, log2nregs, expthreshRaw, sparseon) untouched --
// compatibleWith has already established they're identical to other's.
func (m *Multiset) copyFrom(other *Multiset) {
	m.kind = other.kind
	switch other.kind {
	case repExplicit:
		m.explicit = append([]uint64(nil), other.explicit...)
	case repCompressed:
		m.registers = append([]byte(nil), other.registers...)
	}
}

// unionExplicitExplicit implements rule 4: batch-insert src's elements,
// searching dst's original (pre-union) list so appended entries don't
// shadow each other, promoting mid-batch if the explicit threshold is
// reached, and re-sorting once at the end if still EXPLICIT.
func (m *Multiset) unionExplicitExplicit(src *Multiset) {
	originalLen := len(m.explicit)
	expval := m.effectiveExpthresh()
	promoted := false

	for _, e := range src.explicit {
		if promoted {
			m.compressedAdd(e)
			continue
		}

		if _, found := explicitSearch(m.explicit[:originalLen], e); found {
			continue
		}

		m.explicit = append(m.explicit, e)
		if int64(len(m.explicit)) >= expval {
			m.promoteToCompressed()
			promoted = true
		}
	}

	if !promoted {
		sort.Slice(m.explicit, func(i, j int) bool { return signedLess(m.explicit[i], m.explicit[j]) })
	}
}

// unionExplicitCompressed implements rule 5: dst's explicit elements are
// folded into a copy of src's registers, which then becomes dst's storage.
func (m *Multiset) unionExplicitCompressed(src *Multiset) {
	newRegisters := append([]byte(nil), src.registers...)
	saved := m.explicit

	m.explicit = nil
	m.kind = repCompressed
	m.registers = newRegisters

	for _, e := range saved {
		m.compressedAdd(e)
	}
}
