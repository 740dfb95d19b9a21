package gcc

import (
	"fmt"
	"math/bits"
	"strings"
)

// Domain represents a finite set of integers maintained as a lower bound,
// an upper bound, and a set of holes punched out of that interval:
// dom(x) = [L, U] \ H. Implementations are immutable — operations return
// new domains rather than mutating in place, mirroring the copy-on-write
// discipline the host engine uses for trailed backtracking.
//
// Unlike a domain restricted to 1..n, a Domain here covers an arbitrary
// contiguous range of ints fixed at creation time; a base offset maps
// values into bit positions.
type Domain interface {
	// Count returns the number of values currently in the domain.
	Count() int

	// Has reports whether value is currently present.
	Has(value int) bool

	// Remove returns a new domain with value removed. A no-op clone is
	// returned if value was already absent.
	Remove(value int) Domain

	// IsSingleton reports whether exactly one value remains.
	IsSingleton() bool

	// SingletonValue returns the sole remaining value. Behavior is
	// undefined if the domain is not a singleton.
	SingletonValue() int

	// IterateValues calls f once per value, in ascending order.
	IterateValues(f func(value int))

	// Intersect returns the values present in both domains.
	Intersect(other Domain) Domain

	// Equal reports whether the two domains contain exactly the same
	// values.
	Equal(other Domain) bool

	// Min returns the lower bound L of [L, U]. Returns 0 for an empty
	// domain.
	Min() int

	// Max returns the upper bound U of [L, U]. Returns 0 for an empty
	// domain.
	Max() int

	// Holes calls f once per value in (Min(), Max()) that is absent from
	// the domain, in ascending order — the H in [L, U] \ H.
	Holes(f func(value int))

	// String returns a human-readable representation, e.g. "{3..7}" or
	// "{1,3,5}".
	String() string
}

// BitSetDomain is a bitset-backed Domain over an arbitrary contiguous
// range of ints. Bit i of words represents value base+i. This follows the
// teacher's word-array bitset layout (BitSetDomain in the reference
// finite-domain package) generalized with a base offset so domains need
// not start at 1.
type BitSetDomain struct {
	base  int // value represented by bit 0
	width int // number of representable values (base .. base+width-1)
	words []uint64
}

// NewBitSetDomain creates a domain containing every integer in [lo, hi].
func NewBitSetDomain(lo, hi int) *BitSetDomain {
	if hi < lo {
		return &BitSetDomain{base: lo, width: 0}
	}
	width := hi - lo + 1
	d := &BitSetDomain{base: lo, width: width, words: make([]uint64, (width+63)/64)}
	for i := 0; i < width; i++ {
		d.words[i/64] |= 1 << uint(i%64)
	}
	return d
}

// NewBitSetDomainFromValues creates a domain over [lo, hi] containing only
// the given values; values outside [lo, hi] are ignored.
func NewBitSetDomainFromValues(lo, hi int, values []int) *BitSetDomain {
	if hi < lo {
		return &BitSetDomain{base: lo, width: 0}
	}
	width := hi - lo + 1
	d := &BitSetDomain{base: lo, width: width, words: make([]uint64, (width+63)/64)}
	for _, v := range values {
		if v >= lo && v <= hi {
			i := v - lo
			d.words[i/64] |= 1 << uint(i%64)
		}
	}
	return d
}

func (d *BitSetDomain) bitIndex(value int) (int, uint, bool) {
	i := value - d.base
	if i < 0 || i >= d.width {
		return 0, 0, false
	}
	return i / 64, uint(i % 64), true
}

// Count implements Domain.
func (d *BitSetDomain) Count() int {
	n := 0
	for _, w := range d.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Has implements Domain.
func (d *BitSetDomain) Has(value int) bool {
	word, off, ok := d.bitIndex(value)
	if !ok {
		return false
	}
	return (d.words[word]>>off)&1 == 1
}

// Remove implements Domain.
func (d *BitSetDomain) Remove(value int) Domain {
	word, off, ok := d.bitIndex(value)
	if !ok || (d.words[word]>>off)&1 == 0 {
		return d.clone()
	}
	nd := d.clone()
	nd.words[word] &^= 1 << off
	return nd
}

func (d *BitSetDomain) clone() *BitSetDomain {
	words := make([]uint64, len(d.words))
	copy(words, d.words)
	return &BitSetDomain{base: d.base, width: d.width, words: words}
}

// IsSingleton implements Domain.
func (d *BitSetDomain) IsSingleton() bool { return d.Count() == 1 }

// SingletonValue implements Domain.
func (d *BitSetDomain) SingletonValue() int {
	for i, w := range d.words {
		if w != 0 {
			return d.base + i*64 + bits.TrailingZeros64(w)
		}
	}
	panic("gcc: SingletonValue called on a domain that is not a singleton")
}

// IterateValues implements Domain.
func (d *BitSetDomain) IterateValues(f func(value int)) {
	for wi, w := range d.words {
		for w != 0 {
			lo := w & -w
			off := bits.TrailingZeros64(w)
			f(d.base + wi*64 + off)
			w &^= lo
		}
	}
}

// Intersect implements Domain.
func (d *BitSetDomain) Intersect(other Domain) Domain {
	o, ok := other.(*BitSetDomain)
	if !ok || o.base != d.base || o.width != d.width {
		// Fall back to value-wise intersection for heterogeneous domains.
		vals := make([]int, 0, d.Count())
		d.IterateValues(func(v int) {
			if other.Has(v) {
				vals = append(vals, v)
			}
		})
		lo, hi := d.base, d.base+d.width-1
		return NewBitSetDomainFromValues(lo, hi, vals)
	}
	nd := &BitSetDomain{base: d.base, width: d.width, words: make([]uint64, len(d.words))}
	for i := range d.words {
		nd.words[i] = d.words[i] & o.words[i]
	}
	return nd
}

// Equal implements Domain.
func (d *BitSetDomain) Equal(other Domain) bool {
	o, ok := other.(*BitSetDomain)
	if !ok || o.base != d.base || o.width != d.width {
		// Fall back to value-wise comparison for heterogeneous domains.
		if d.Count() != other.Count() {
			return false
		}
		same := true
		d.IterateValues(func(v int) {
			if !other.Has(v) {
				same = false
			}
		})
		return same
	}
	for i := range d.words {
		if d.words[i] != o.words[i] {
			return false
		}
	}
	return true
}

// Min implements Domain.
func (d *BitSetDomain) Min() int {
	for i, w := range d.words {
		if w != 0 {
			return d.base + i*64 + bits.TrailingZeros64(w)
		}
	}
	return 0
}

// Max implements Domain.
func (d *BitSetDomain) Max() int {
	for i := len(d.words) - 1; i >= 0; i-- {
		if w := d.words[i]; w != 0 {
			return d.base + i*64 + 63 - bits.LeadingZeros64(w)
		}
	}
	return 0
}

// Holes implements Domain.
func (d *BitSetDomain) Holes(f func(value int)) {
	if d.Count() == 0 {
		return
	}
	lo, hi := d.Min(), d.Max()
	for v := lo + 1; v < hi; v++ {
		if !d.Has(v) {
			f(v)
		}
	}
}

// String implements Domain.
func (d *BitSetDomain) String() string {
	if d.Count() == 0 {
		return "{}"
	}
	var vals []int
	d.IterateValues(func(v int) { vals = append(vals, v) })
	if len(vals) == 1 {
		return fmt.Sprintf("{%d}", vals[0])
	}
	consecutive := true
	for i := 1; i < len(vals); i++ {
		if vals[i] != vals[i-1]+1 {
			consecutive = false
			break
		}
	}
	if consecutive {
		return fmt.Sprintf("{%d..%d}", vals[0], vals[len(vals)-1])
	}
	var b strings.Builder
	b.WriteString("{")
	for i, v := range vals {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "%d", v)
	}
	b.WriteString("}")
	return b.String()
}
