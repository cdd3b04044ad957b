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

func TestHashBytesIsDeterministic(t *testing.T) {
	h1, err := HashBytes([]byte("clientid-42"), 0)
	require.NoError(t, err)
	h2, err := HashBytes([]byte("clientid-42"), 0)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
}

func TestHashBytesDiffersBySeed(t *testing.T) {
	h1, err := HashBytes([]byte("clientid-42"), 0)
	require.NoError(t, err)
	h2, err := HashBytes([]byte("clientid-42"), 1)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestHashBytesRejectsNegativeSeed(t *testing.T) {
	_, err := HashBytes([]byte("x"), -1)
	require.Error(t, err)
	assert.Equal(t, BadHashSeed, err.(*Error).Kind())
}

func TestHashStringMatchesHashBytes(t *testing.T) {
	b, err := HashBytes([]byte("hello"), 7)
	require.NoError(t, err)
	s, err := HashString("hello", 7)
	require.NoError(t, err)
	assert.Equal(t, b, s)
}
