/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample

import (
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext/prng"
)

// NewSource returns a Mersenne twister source seeded with seed.
func NewSource(seed uint64) rand.Source {
	src := prng.NewMT19937()
	src.Seed(seed)
	return src
}

// NewRand returns a random number generator backed by a Mersenne
// twister seeded with seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(NewSource(seed))
}

// keyedBlock is the number of keystream bytes produced per refill.
const keyedBlock = 512

// KeyedSource is a deterministic source of pseudo-random values
// determined by a 32 byte key. Values are read from the salsa20
// keystream, refilled block by block with an increasing nonce.
type KeyedSource struct {
	key    *[32]byte
	nonce  uint64
	buf    []byte
	offset int
}

// NewKeyedSource returns an instance of KeyedSource for the given key.
func NewKeyedSource(key *[32]byte) *KeyedSource {
	k := *key
	return &KeyedSource{
		key:    &k,
		buf:    make([]byte, keyedBlock),
		offset: keyedBlock,
	}
}

// Seed restarts the keystream at the block numbered seed.
func (s *KeyedSource) Seed(seed uint64) {
	s.nonce = seed
	s.offset = keyedBlock
}

// Uint64 returns the next 8 bytes of the keystream.
func (s *KeyedSource) Uint64() uint64 {
	if s.offset+8 > keyedBlock {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.offset:])
	s.offset += 8

	return v
}

func (s *KeyedSource) refill() {
	in := make([]byte, keyedBlock) // input is initialized to zeros
	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, s.nonce)

	salsa20.XORKeyStream(s.buf, in, nonce, s.key)
	s.nonce++
	s.offset = 0
}
