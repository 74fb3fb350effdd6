package random

import (
	mathrand "math/rand/v2"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Func is a named generator. Arguments arrive as parsed placeholder
// literals: int, float64, string, bool, nil or []any.
type Func func(args ...any) any

// Entry is a registered generator: either Func or Pool is set.
type Entry struct {
	Name string
	Func Func
	Pool []any
}

// Option configures a Random.
type Option func(*Random)

// WithSeed makes every draw come from a PCG stream seeded with seed.
func WithSeed(seed uint64) Option {
	return func(r *Random) {
		r.rng = mathrand.New(mathrand.NewPCG(seed, 0))
	}
}

// WithRand uses rng for every draw.
func WithRand(rng *mathrand.Rand) Option {
	return func(r *Random) {
		r.rng = rng
	}
}

// WithClock sets the clock used by @now and as the upper bound of random
// dates. Fixing it makes date output reproducible together with WithSeed.
func WithClock(now func() time.Time) Option {
	return func(r *Random) {
		if now != nil {
			r.now = now
		}
	}
}

// Random is a registry of named generators plus the primitive draws the
// template engine needs.
type Random struct {
	rng   *mathrand.Rand
	rngMu sync.Mutex
	now   func() time.Time

	mu      sync.RWMutex
	entries map[string]Entry

	counter atomic.Int64
}

// New creates a Random with the built-in catalogue registered.
func New(opts ...Option) *Random {
	r := &Random{
		now:     time.Now,
		entries: make(map[string]Entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.registerBasic()
	r.registerDate()
	r.registerText()
	r.registerName()
	r.registerWeb()
	r.registerAddress()
	r.registerColor()
	r.registerHelper()
	r.registerMisc()
	return r
}

// Register adds or replaces a generator function.
func (r *Random) Register(name string, fn Func) {
	r.put(Entry{Name: name, Func: fn})
}

// RegisterPool adds or replaces a pick pool.
func (r *Random) RegisterPool(name string, items []any) {
	pool := make([]any, len(items))
	copy(pool, items)
	r.put(Entry{Name: name, Pool: pool})
}

func (r *Random) put(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[strings.ToLower(e.Name)] = e
}

// Lookup finds a generator by name, ignoring case.
func (r *Random) Lookup(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.entries[name]; ok {
		return e, true
	}
	e, ok := r.entries[strings.ToLower(name)]
	return e, ok
}

// Names returns the registered generator names in sorted order.
func (r *Random) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names
}

// Call invokes a generator by name. Pools pick one element.
func (r *Random) Call(name string, args ...any) (any, bool) {
	e, ok := r.Lookup(name)
	if !ok {
		return nil, false
	}
	if e.Func != nil {
		return e.Func(args...), true
	}
	return r.Pick(e.Pool), true
}

// alias registers fn under several names.
func (r *Random) alias(fn Func, names ...string) {
	for _, n := range names {
		r.Register(n, fn)
	}
}

// Pick returns one element of items chosen uniformly, or nil.
func (r *Random) Pick(items []any) any {
	if len(items) == 0 {
		return nil
	}
	return items[r.intN(len(items))]
}

// Shuffle returns a uniformly shuffled copy of keys.
func (r *Random) Shuffle(keys []string) []string {
	out := make([]string, len(keys))
	copy(out, keys)
	for i := len(out) - 1; i > 0; i-- {
		j := r.intN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Bool draws a boolean. With min and max set, the result equals cur with
// probability min/(min+max); unset bounds count as 1.
func (r *Random) Bool(min, max *int, cur bool) bool {
	lo, hi := 1, 1
	if min != nil {
		lo = *min
	}
	if max != nil {
		hi = *max
	}
	if lo+hi <= 0 {
		return cur
	}
	if r.float64() > float64(lo)/float64(lo+hi) {
		return !cur
	}
	return cur
}

// Integer returns a random int in [min, max].
func (r *Random) Integer(min, max int) int {
	return r.between(min, max)
}

// Character returns one character from pool. Pool may name a character
// class (lower, upper, number, symbol, alpha) or list the characters
// itself; an empty pool means all classes.
func (r *Random) Character(pool string) string {
	chars := []rune(resolvePool(pool))
	if len(chars) == 0 {
		return ""
	}
	return string(chars[r.intN(len(chars))])
}

// String returns count characters drawn from all character classes.
func (r *Random) String(count int) string {
	return r.stringFrom(poolAll, count)
}

func (r *Random) stringFrom(pool string, count int) string {
	chars := []rune(resolvePool(pool))
	if count <= 0 || len(chars) == 0 {
		return ""
	}
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteRune(chars[r.intN(len(chars))])
	}
	return sb.String()
}

const (
	poolLower  = "abcdefghijklmnopqrstuvwxyz"
	poolUpper  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	poolNumber = "0123456789"
	poolSymbol = "!@#$%^&*()[]"
	poolAlpha  = poolLower + poolUpper
	poolAll    = poolLower + poolUpper + poolNumber + poolSymbol
)

func resolvePool(pool string) string {
	switch strings.ToLower(pool) {
	case "":
		return poolAll
	case "lower":
		return poolLower
	case "upper":
		return poolUpper
	case "number":
		return poolNumber
	case "symbol":
		return poolSymbol
	case "alpha":
		return poolAlpha
	}
	return pool
}
