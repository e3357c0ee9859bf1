package pipeline

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
	"time"
)

// Job IDs are ULIDs: 26 Crockford Base32 characters with a millisecond
// timestamp prefix, so job listings and log lines sort by submission
// time. A per-millisecond sequence keeps IDs unique under burst
// submission.

const crockford = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

var (
	idMu     sync.Mutex
	idLastMs uint64
	idSeq    uint16
)

// NewJobID returns a fresh, time-ordered job identifier.
func NewJobID() string {
	idMu.Lock()
	defer idMu.Unlock()

	ms := uint64(time.Now().UnixMilli())
	if ms == idLastMs {
		idSeq++
	} else {
		idLastMs = ms
		idSeq = 0
	}

	var b [16]byte
	// 48-bit timestamp in bytes 0-5.
	binary.BigEndian.PutUint64(b[:8], ms<<16)
	// Randomness in bytes 6-15, with the sequence overlaid on bytes 6-7
	// so same-millisecond IDs still sort by submission order.
	rand.Read(b[6:])
	binary.BigEndian.PutUint16(b[6:8], idSeq)

	return encodeCrockford(b)
}

// encodeCrockford packs 128 bits into 26 Base32 characters: 10 for the
// timestamp, 16 for the sequence and randomness.
func encodeCrockford(b [16]byte) string {
	var out [26]byte

	ts := binary.BigEndian.Uint64(b[:8]) >> 16
	for i := 9; i >= 0; i-- {
		out[i] = crockford[ts&31]
		ts >>= 5
	}

	var acc uint32
	nbits := 0
	j := 10
	for _, by := range b[6:] {
		acc = acc<<8 | uint32(by)
		nbits += 8
		for nbits >= 5 {
			nbits -= 5
			out[j] = crockford[(acc>>nbits)&31]
			j++
		}
	}

	return string(out[:])
}
