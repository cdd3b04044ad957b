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

import "encoding/binary"

// Unpack deserializes a byte slice written by Pack back into a Multiset. It
// rejects anything with a version other than 1, an unknown type code, a
// length that doesn't match what the header declares, or (for EXPLICIT)
// elements that aren't strictly ascending by signed int64 comparison.
//
// A SPARSE wire payload is always materialized as COMPRESSED -- SPARSE has
// no corresponding in-memory representation.
func Unpack(data []byte) (*Multiset, error) {
	if len(data) < headerBytes {
		return nil, ErrInsufficientBytes
	}

	hdr := decodeHeader(data[:headerBytes])
	if hdr.version != schemaVersion {
		return nil, newError(BadEncoding, "unsupported schema version")
	}

	payload := data[headerBytes:]

	switch hdr.wt {
	case wireUndefined:
		if len(payload) != 0 {
			return nil, newError(BadEncoding, "UNDEFINED payload must be empty")
		}
		return &Multiset{
			nbits: hdr.nbits, log2nregs: hdr.log2nregs,
			expthreshRaw: hdr.expthreshRaw, sparseon: hdr.sparseon,
			kind: repUndefined,
		}, nil

	case wireEmpty:
		if len(payload) != 0 {
			return nil, newError(BadEncoding, "EMPTY payload must be empty")
		}
		if err := validateMeta(hdr.log2nregs, hdr.nbits, hdr.expthreshRaw); err != nil {
			return nil, err
		}
		return &Multiset{
			nbits: hdr.nbits, log2nregs: hdr.log2nregs,
			expthreshRaw: hdr.expthreshRaw, sparseon: hdr.sparseon,
			kind: repEmpty,
		}, nil

	case wireExplicit:
		return unpackExplicit(hdr, payload)

	case wireCompressed:
		return unpackCompressed(hdr, payload)

	case wireSparse:
		return unpackSparse(hdr, payload)

	default:
		return nil, newError(BadEncoding, "unknown wire type")
	}
}

func unpackExplicit(hdr decodedHeader, payload []byte) (*Multiset, error) {
	if len(payload)%8 != 0 {
		return nil, newError(BadEncoding, "EXPLICIT payload must be a multiple of 8 bytes")
	}
	if len(payload) > MSMaxData {
		return nil, newError(BadSize, "EXPLICIT payload exceeds MSMaxData")
	}
	if err := validateMeta(hdr.log2nregs, hdr.nbits, hdr.expthreshRaw); err != nil {
		return nil, err
	}

	n := len(payload) / 8
	elems := make([]uint64, n)
	for i := 0; i < n; i++ {
		elems[i] = binary.BigEndian.Uint64(payload[8*i:])
	}
	for i := 1; i < n; i++ {
		if !signedLess(elems[i-1], elems[i]) {
			return nil, newError(BadEncoding, "EXPLICIT elements must be strictly ascending")
		}
	}

	return &Multiset{
		nbits: hdr.nbits, log2nregs: hdr.log2nregs,
		expthreshRaw: hdr.expthreshRaw, sparseon: hdr.sparseon,
		kind: repExplicit, explicit: elems,
	}, nil
}

func unpackCompressed(hdr decodedHeader, payload []byte) (*Multiset, error) {
	if err := validateMeta(hdr.log2nregs, hdr.nbits, hdr.expthreshRaw); err != nil {
		return nil, err
	}

	nregs := 1 << uint(hdr.log2nregs)
	packedBytes := (hdr.nbits*nregs + 7) / 8
	if len(payload) != packedBytes {
		return nil, newError(BadEncoding, "COMPRESSED payload length does not match header")
	}
	if nregs > MSMaxData {
		return nil, newError(BadSize, "register array exceeds MSMaxData")
	}

	registers := make([]byte, nregs)
	r := newBitReader(payload)
	for i := 0; i < nregs; i++ {
		registers[i] = byte(r.readField(uint(hdr.nbits)))
	}

	return &Multiset{
		nbits: hdr.nbits, log2nregs: hdr.log2nregs,
		expthreshRaw: hdr.expthreshRaw, sparseon: hdr.sparseon,
		kind: repCompressed, registers: registers,
	}, nil
}

func unpackSparse(hdr decodedHeader, payload []byte) (*Multiset, error) {
	if err := validateMeta(hdr.log2nregs, hdr.nbits, hdr.expthreshRaw); err != nil {
		return nil, err
	}

	nregs := 1 << uint(hdr.log2nregs)
	if nregs > MSMaxData {
		return nil, newError(BadSize, "register array exceeds MSMaxData")
	}

	chunk := hdr.log2nregs + hdr.nbits
	if chunk <= 0 || chunk > 64 {
		return nil, newError(BadEncoding, "invalid SPARSE chunk width")
	}
	nfilled := (len(payload) * 8) / chunk
	if len(payload)*8-nfilled*chunk > 7 {
		return nil, newError(BadEncoding, "SPARSE payload has more than 7 bits of padding")
	}

	registers := make([]byte, nregs)
	r := newBitReader(payload)
	valueMask := uint64(1)<<uint(hdr.nbits) - 1

	for i := 0; i < nfilled; i++ {
		field := r.readField(uint(chunk))
		ndx := field >> uint(hdr.nbits)
		val := field & valueMask

		if int(ndx) >= nregs {
			return nil, newError(BadEncoding, "SPARSE register index out of range")
		}
		registers[ndx] = byte(val)
	}

	return &Multiset{
		nbits: hdr.nbits, log2nregs: hdr.log2nregs,
		expthreshRaw: hdr.expthreshRaw, sparseon: hdr.sparseon,
		kind: repCompressed, registers: registers,
	}, nil
}
