package fpidioms

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"
)

// ============================================================================
// Reference Identity
// ============================================================================

// PointClass is a mutable point that is always handled through a pointer.
// Two *PointClass values are equal only when they point at the same
// allocation, no matter what the coordinates hold.
//
// Example:
//
//	p1 := NewPointClass(1, 2, 3)
//	p2 := NewPointClass(1, 2, 3)
//	p1 == p2 // false
//	p1 == p1 // true
type PointClass struct {
	X decimal.Decimal
	Y decimal.Decimal
	Z decimal.Decimal
}

// NewPointClass allocates a new mutable point.
func NewPointClass(x, y, z int64) *PointClass {
	return &PointClass{
		X: decimal.NewFromInt(x),
		Y: decimal.NewFromInt(y),
		Z: decimal.NewFromInt(z),
	}
}

// SameInstance reports whether a and b are the same allocation.
func SameInstance(a, b *PointClass) bool {
	return a == b
}

// ============================================================================
// Built-in Value Equality
// ============================================================================

// PointRecord is an immutable point with value equality.
//
// The coordinates are unexported so a PointRecord cannot change after
// construction. Compare records with Equal: decimal.Decimal carries a
// *big.Int, so the == operator compares pointers inside the coefficients and
// is not value equality.
type PointRecord struct {
	x, y, z decimal.Decimal
}

// NewPointRecord builds a point from three decimals.
func NewPointRecord(x, y, z decimal.Decimal) PointRecord {
	return PointRecord{x: x, y: y, z: z}
}

// PointOf builds a point from integer coordinates.
func PointOf(x, y, z int64) PointRecord {
	return NewPointRecord(decimal.NewFromInt(x), decimal.NewFromInt(y), decimal.NewFromInt(z))
}

// X returns the x coordinate.
func (p PointRecord) X() decimal.Decimal { return p.x }

// Y returns the y coordinate.
func (p PointRecord) Y() decimal.Decimal { return p.y }

// Z returns the z coordinate.
func (p PointRecord) Z() decimal.Decimal { return p.z }

// Equal reports coordinate-wise equality. Scale is ignored, so 1 and 1.00
// are the same coordinate.
func (p PointRecord) Equal(other PointRecord) bool {
	return p.x.Equal(other.x) && p.y.Equal(other.y) && p.z.Equal(other.z)
}

// Hash returns a hash consistent with Equal.
func (p PointRecord) Hash() uint64 {
	return hashDecimals(p.x, p.y, p.z)
}

// Deconstruct returns the coordinates in declaration order.
func (p PointRecord) Deconstruct() (x, y, z decimal.Decimal) {
	return p.x, p.y, p.z
}

// WithX returns a copy of p with x replaced.
func (p PointRecord) WithX(x decimal.Decimal) PointRecord {
	p.x = x
	return p
}

// WithY returns a copy of p with y replaced.
func (p PointRecord) WithY(y decimal.Decimal) PointRecord {
	p.y = y
	return p
}

// WithZ returns a copy of p with z replaced.
func (p PointRecord) WithZ(z decimal.Decimal) PointRecord {
	p.z = z
	return p
}

// String implements fmt.Stringer.
func (p PointRecord) String() string {
	return fmt.Sprintf("PointRecord{X: %s, Y: %s, Z: %s}", p.x, p.y, p.z)
}

// ============================================================================
// Hand-written Value Equality
// ============================================================================

// PointWithValueEquality is a pointer type that opts into value equality by
// hand. It is the long way round to what PointRecord gets from being a value.
type PointWithValueEquality struct {
	x, y, z decimal.Decimal
}

// NewPointWithValueEquality allocates a point with value equality.
func NewPointWithValueEquality(x, y, z decimal.Decimal) *PointWithValueEquality {
	return &PointWithValueEquality{x: x, y: y, z: z}
}

// X returns the x coordinate.
func (p *PointWithValueEquality) X() decimal.Decimal { return p.x }

// Y returns the y coordinate.
func (p *PointWithValueEquality) Y() decimal.Decimal { return p.y }

// Z returns the z coordinate.
func (p *PointWithValueEquality) Z() decimal.Decimal { return p.z }

// Equal compares by value. A nil receiver equals only a nil argument.
func (p *PointWithValueEquality) Equal(other *PointWithValueEquality) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p == other {
		return true
	}
	return p.x.Equal(other.x) && p.y.Equal(other.y) && p.z.Equal(other.z)
}

// Hash combines the coordinate hashes. Equal points hash alike.
func (p *PointWithValueEquality) Hash() uint64 {
	if p == nil {
		return 0
	}
	return hashDecimals(p.x, p.y, p.z)
}

// Deconstruct returns the coordinates in declaration order.
func (p *PointWithValueEquality) Deconstruct() (x, y, z decimal.Decimal) {
	return p.x, p.y, p.z
}

// hashDecimals hashes the canonical string of each decimal, so values that
// differ only in trailing zeros share a hash.
func hashDecimals(values ...decimal.Decimal) uint64 {
	h := xxhash.New()
	for _, v := range values {
		_, _ = h.WriteString(v.String())
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}
