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
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPackEmptyDefaultsByteLayout pins down the exact header byte layout
// for a freshly-constructed default Multiset: vers=1/type=1 (0x11),
// regwidth=5 stored as 4<<5 OR'd with log2m=11 (0x8B), sparseon=1<<6 OR'd
// with expthresh=auto=63 (0x7F).
func TestPackEmptyDefaultsByteLayout(t *testing.T) {
	m, err := Empty()
	require.NoError(t, err)

	data := Pack(m)
	require.Len(t, data, 3)
	assert.Equal(t, byte(0x11), data[0])
	assert.Equal(t, byte(0x8B), data[1])
	assert.Equal(t, byte(0x7F), data[2])
}

func TestPackExplicitSingleAddLength(t *testing.T) {
	m, err := Empty()
	require.NoError(t, err)

	m.Add(0xDEADBEEFCAFEBABE)
	data := Pack(m)
	require.Len(t, data, 3+8)
	assert.Equal(t, uint64(0xDEADBEEFCAFEBABE), binary.BigEndian.Uint64(data[3:]))
}
