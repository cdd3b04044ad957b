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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackedSizeMatchesPackLength(t *testing.T) {
	cases := []*Multiset{}

	empty, _ := Empty4(11, 5, -1, true)
	cases = append(cases, empty)

	explicit, _ := Empty4(11, 5, -1, true)
	explicit.Add(1)
	explicit.Add(2)
	explicit.Add(3)
	cases = append(cases, explicit)

	compressed, _ := Empty4(4, 5, 0, true)
	for i := uint64(0); i < 16; i++ {
		compressed.Add(i * 12345)
	}
	cases = append(cases, compressed)

	for _, m := range cases {
		assert.Equal(t, PackedSize(m), len(Pack(m)), m.Representation())
	}
}

func TestPackEmptyHeader(t *testing.T) {
	m, err := Empty4(11, 5, -1, true)
	require.NoError(t, err)

	data := Pack(m)
	require.Len(t, data, headerBytes)

	hdr := decodeHeader(data)
	assert.Equal(t, 1, hdr.version)
	assert.Equal(t, wireEmpty, hdr.wt)
	assert.Equal(t, 5, hdr.nbits)
	assert.Equal(t, 11, hdr.log2nregs)
	assert.Equal(t, int64(-1), hdr.expthreshRaw)
	assert.True(t, hdr.sparseon)
}

func TestPackUnpackRoundTrip(t *testing.T) {
	m, _ := Empty4(11, 5, -1, true)
	m.Add(10)
	m.Add(20)
	m.Add(30)

	data := Pack(m)
	got, err := Unpack(data)
	require.NoError(t, err)
	assert.Equal(t, "EXPLICIT", got.Representation())
	assert.Equal(t, m.explicit, got.explicit)
}

func TestPackUnpackRoundTripCompressed(t *testing.T) {
	m, _ := Empty4(6, 5, 0, true)
	for i := uint64(0); i < 5000; i++ {
		m.Add(i * 104729)
	}

	data := Pack(m)
	got, err := Unpack(data)
	require.NoError(t, err)
	assert.Equal(t, "COMPRESSED", got.Representation())
	assert.Equal(t, m.registers, got.registers)
}

func TestUnpackRejectsTruncatedHeader(t *testing.T) {
	_, err := Unpack([]byte{0x11, 0x81})
	require.Error(t, err)
	assert.Same(t, ErrInsufficientBytes, err)
}

func TestUnpackRejectsUnsortedExplicit(t *testing.T) {
	m, _ := Empty4(11, 5, -1, true)
	m.Add(1)
	m.Add(2)
	data := Pack(m)

	// swap the two encoded elements to break ascending order
	payload := data[headerBytes:]
	var swapped []byte
	swapped = append(swapped, payload[8:16]...)
	swapped = append(swapped, payload[0:8]...)
	corrupt := append(append([]byte{}, data[:headerBytes]...), swapped...)

	_, err := Unpack(corrupt)
	require.Error(t, err)
	assert.Equal(t, BadEncoding, err.(*Error).Kind())
}

func TestSparseChosenForMostlyEmptyRegisters(t *testing.T) {
	m, _ := Empty4(14, 5, 0, true) // 16384 registers, nearly all zero
	m.Add(1<<14 | 1)               // register 1 = 1
	m.Add(1<<15 | 2)               // register 2 = 2

	wt, _ := m.chooseWireType()
	assert.Equal(t, wireSparse, wt)

	data := Pack(m)
	got, err := Unpack(data)
	require.NoError(t, err)
	assert.Equal(t, m.registers, got.registers)
}

func TestSparseDisabledForcesDense(t *testing.T) {
	m, _ := Empty4(14, 5, 0, false)
	m.Add(1)

	wt, _ := m.chooseWireType()
	assert.Equal(t, wireCompressed, wt)
}
