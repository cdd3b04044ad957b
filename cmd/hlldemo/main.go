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

package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/pghll/hll"
)

func main() {
	count := 4000000
	var clientid uint64

	buf := bytes.NewBuffer([]byte{})
	for i := 0; i < count; i++ {
		clientid = uint64(rand.Int63())
		binary.Write(buf, binary.LittleEndian, clientid)
	}
	b := buf.Bytes()

	t1 := time.Now().UnixNano()
	h, err := hll.Empty4(14, 5, -1, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hll.Empty4: %s\n", err)
		os.Exit(1)
	}

	offset := 0
	for i := 0; i < count; i++ {
		raw := b[offset : offset+8]
		hashed, err := hll.HashBytes(raw, 0)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hll.HashBytes: %s\n", err)
			os.Exit(1)
		}
		h.Add(hashed)
		offset += 8
	}

	num, err := hll.Cardinality(h)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hll.Cardinality: %s\n", err)
		os.Exit(1)
	}
	t2 := time.Now().UnixNano()
	fmt.Printf("time:%d ns, accuracy:%f\n", t2-t1, num/float64(count))

	data := hll.Pack(h)
	fmt.Printf("bytes:%d (PackedSize says %d)\n", len(data), hll.PackedSize(h))

	h2, err := hll.Unpack(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hll.Unpack: %s\n", err)
		os.Exit(1)
	}
	num2, err := hll.Cardinality(h2)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hll.Cardinality: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("round trip cardinality: %f\n", num2)
}
