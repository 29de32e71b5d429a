// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package hash implements the single SHA-256-derived 64-bit key that
// seeds the Voronoi cell jitter. This is built directly on the standard
// library's crypto/sha256 rather than a third-party hashing package:
// the derivation is "first 64 bits of SHA-256, each half byte-swapped,"
// a fixed bit layout no general-purpose hashing library models.
package hash

import (
	"crypto/sha256"
	"encoding/binary"
)

// VoronoiSHA returns the deterministic 64-bit jitter key for seed: the
// first 8 bytes of SHA-256(little-endian seed bytes), with each 32-bit
// half byte-swapped to little-endian. It depends only on seed and is
// endianness-independent on the host.
func VoronoiSHA(seed int64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(seed))

	digest := sha256.Sum256(buf[:])

	hiWord := binary.BigEndian.Uint32(digest[0:4])
	loWord := binary.BigEndian.Uint32(digest[4:8])

	return uint64(swapBytes32(hiWord))<<32 | uint64(swapBytes32(loWord))
}

func swapBytes32(w uint32) uint32 {
	return (w>>24)&0xff | (w>>8)&0xff00 | (w<<8)&0xff0000 | (w<<24)&0xff000000
}
