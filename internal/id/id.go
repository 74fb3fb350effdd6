package id

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Counter hands out increasing ids starting at 1.
// The zero value is ready to use and safe for concurrent callers.
type Counter struct {
	n atomic.Int64
}

// Next returns the next id.
func (c *Counter) Next() int64 {
	return c.n.Add(1)
}

// NextString returns the next id in decimal form.
func (c *Counter) NextString() string {
	return strconv.FormatInt(c.Next(), 10)
}

// UUID generates a version 4 UUID reading randomness from r.
// A nil reader uses crypto/rand.
// Returns a string in the format: xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx
func UUID(r io.Reader) string {
	if r == nil {
		return uuid.NewString()
	}
	u, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return uuid.NewString()
	}
	return u.String()
}

// Short generates a 16-character hex ID reading randomness from r.
// A nil reader uses crypto/rand.
func Short(r io.Reader) string {
	if r == nil {
		r = rand.Reader
	}
	b := make([]byte, 8)
	if _, err := io.ReadFull(r, b); err != nil {
		_, _ = rand.Read(b)
	}
	return hex.EncodeToString(b)
}
