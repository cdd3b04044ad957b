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

import "github.com/spaolacci/murmur3"

// HashBytes hashes data with MurmurHash3-x64-128 and returns the low 64 bits
// of the digest, the hash this package's Add expects callers to supply.
// seed must be non-negative, matching the storage spec's hash_* family
// contract; negative seeds return a BadHashSeed error.
//
// Hashing is an external collaborator as far as the storage spec is
// concerned -- callers with their own hash pipeline can call Add directly
// with a pre-hashed value and never need this function.
func HashBytes(data []byte, seed int64) (uint64, error) {
	if seed < 0 {
		return 0, newError(BadHashSeed, "hash seed must be non-negative")
	}
	low, _ := murmur3.Sum128WithSeed(data, uint32(seed))
	return low, nil
}

// HashString is a convenience wrapper around HashBytes for string input.
func HashString(s string, seed int64) (uint64, error) {
	return HashBytes([]byte(s), seed)
}
