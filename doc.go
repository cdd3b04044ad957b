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

// Package hll implements a HyperLogLog multiset sketch that is bit-for-bit
// wire compatible with schema version 1 of the PostgreSQL hll extension's
// storage format (https://github.com/aggregateknowledge/hll-storage-spec).
//
// A Multiset starts out EMPTY, promotes to EXPLICIT (an exact, sorted list
// of hashed elements) once it has seen its first value, and promotes again
// to COMPRESSED (a dense HyperLogLog register array) once the explicit list
// grows past its threshold. A fourth representation, SPARSE, exists only on
// the wire: it is a compact encoding of a mostly-empty register array and is
// always loaded back into COMPRESSED form.
//
// Callers are expected to hash their own elements (with MurmurHash3-x64-128
// or an equivalent strong hash) before calling Add, though HashBytes is
// provided as a ready-made default.
package hll
