// Package fixed implements deterministic fixed-point arithmetic for the
// simulation core.
//
// Number is a signed Q12.3 value on an int16 word; NumberU is an unsigned
// Q13.3 value on a uint16 word, used for magnitudes such as radii and
// squared distances. All spatial and velocity quantities in the simulation
// use these types so that every tick is bit-for-bit reproducible across
// platforms; conversion to floating point happens only at the rendering and
// diagnostics boundary.
//
// Rounding and overflow are pinned: Mul floors (arithmetic right shift of
// the exact 32-bit product), Div truncates toward zero, and all results
// wrap modulo 2^16 on overflow. Addition, subtraction and negation are the
// native operators of the defined integer types and are exact.
package fixed

// FracBits is the number of fractional bits in Number and NumberU.
const FracBits = 3

// Scale is the raw value of 1.0.
const Scale = 1 << FracBits

// Number is a signed Q12.3 fixed-point value.
type Number int16

// NumberU is an unsigned Q13.3 fixed-point value.
type NumberU uint16

// Epsilon is the smallest positive Number, 2^-FracBits = 0.125.
const Epsilon Number = 1

// FromInt converts an integer, wrapping modulo 2^16.
func FromInt(i int) Number {
	return Number(i << FracBits)
}

// FromParts builds a Number from whole units plus a count of eighths.
// Eighths may be negative.
func FromParts(units, eighths int) Number {
	return FromInt(units) + Number(eighths)
}

// FromFloat converts a float, truncating toward zero onto the Q12.3 grid.
// Intended for configuration loading only, never inside the step.
func FromFloat(f float64) Number {
	return Number(int64(f * Scale))
}

// FromRaw reinterprets a raw int16 word as a Number.
func FromRaw(raw int16) Number {
	return Number(raw)
}

// Raw returns the underlying int16 word.
func (n Number) Raw() int16 {
	return int16(n)
}

// Int returns the integer part, rounding toward negative infinity.
func (n Number) Int() int {
	return int(n >> FracBits)
}

// Float64 converts for display and diagnostics only.
func (n Number) Float64() float64 {
	return float64(n) / Scale
}

// Mul multiplies two Numbers, flooring onto the grid. The exact product is
// formed in 32 bits, so the only wrap is the final conversion back to the
// 16-bit word.
func (n Number) Mul(o Number) Number {
	return Number(int32(n) * int32(o) >> FracBits)
}

// Div divides two Numbers, truncating toward zero. Division by zero is a
// programmer error and panics like native integer division.
func (n Number) Div(o Number) Number {
	return Number((int32(n) << FracBits) / int32(o))
}

// Abs returns the magnitude of n. The minimum word wraps to itself, as in
// two's-complement hardware.
func (n Number) Abs() Number {
	if n < 0 {
		return -n
	}
	return n
}

// Unsigned reinterprets the raw word of a Number as a NumberU.
func Unsigned(n Number) NumberU {
	return NumberU(uint16(n))
}

// Signed reinterprets the raw word of a NumberU as a Number.
func Signed(u NumberU) Number {
	return Number(int16(u))
}

// FromIntU converts a non-negative integer, wrapping modulo 2^16.
func FromIntU(i int) NumberU {
	return NumberU(i << FracBits)
}

// Mul multiplies two NumberU values, flooring onto the grid.
func (u NumberU) Mul(o NumberU) NumberU {
	return NumberU(uint32(u) * uint32(o) >> FracBits)
}

// Float64 converts for display and diagnostics only.
func (u NumberU) Float64() float64 {
	return float64(u) / Scale
}
