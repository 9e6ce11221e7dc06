// galois_field.go implements GF(2^8) arithmetic for Reed-Solomon coding.
// The field uses the irreducible polynomial x^8 + x^4 + x^3 + x^2 + 1
// (0x11D), the standard choice for byte-oriented codes such as QR.
//
// All non-zero elements are powers of the primitive element (generator = 2),
// so multiplication and division reduce to table lookups over pre-computed
// log and antilog tables. The tables live in an explicitly constructed
// Field value rather than package globals, so independent codec instances
// cannot interfere and initialization order is explicit.
package rs

import "sync"

// GF(2^8) constants.
const (
	// fieldPoly is the irreducible polynomial x^8 + x^4 + x^3 + x^2 + 1.
	// In binary: 1_0001_1101 = 0x11D. Only the low 8 bits survive reduction.
	fieldPoly = 0x11D

	// fieldOrder is the number of non-zero elements: 2^8 - 1 = 255.
	fieldOrder = 255

	// fieldGenerator is the primitive element for polynomial 0x11D.
	// The value 2 generates all 255 non-zero elements.
	fieldGenerator = 2
)

// Field holds the pre-computed lookup tables for GF(2^8) arithmetic.
// A Field is immutable after construction and safe for unlimited
// concurrent readers.
type Field struct {
	// log maps non-zero field elements to their discrete log.
	log [256]byte
	// exp maps exponents to field elements (doubled for wraparound).
	exp [512]byte
	// mul is a direct multiplication lookup table.
	mul [256][256]byte
	// inv maps non-zero elements to their multiplicative inverse.
	inv [256]byte
}

var (
	defaultField     *Field
	defaultFieldOnce sync.Once
)

// DefaultField returns the process-wide shared Field, building its tables
// exactly once on first use. The tables are written before any reader can
// observe them and never mutated afterwards.
func DefaultField() *Field {
	defaultFieldOnce.Do(func() {
		defaultField = NewField()
	})
	return defaultField
}

// NewField builds a fresh GF(2^8) instance with pre-computed log, exp,
// multiplication, and inverse tables for the polynomial 0x11D.
func NewField() *Field {
	f := &Field{}
	f.initTables()
	return f
}

// initTables pre-computes all lookup tables by repeated multiplication by
// the generator, reducing with the field polynomial whenever the product
// overflows 8 bits.
func (f *Field) initTables() {
	var x uint16 = 1 // g^0 = 1
	for i := 0; i < fieldOrder; i++ {
		f.exp[i] = byte(x)
		f.log[x] = byte(i)
		x <<= 1
		if x&0x100 != 0 {
			x ^= fieldPoly
		}
	}
	// Fill second half for modular wraparound without a reduction step.
	for i := 0; i < fieldOrder; i++ {
		f.exp[i+fieldOrder] = f.exp[i]
	}

	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			if a == 0 || b == 0 {
				f.mul[a][b] = 0
			} else {
				logSum := uint16(f.log[a]) + uint16(f.log[b])
				if logSum >= fieldOrder {
					logSum -= fieldOrder
				}
				f.mul[a][b] = f.exp[logSum]
			}
		}
	}

	f.inv[0] = 0 // inverse of 0 is undefined, never read
	for a := 1; a < 256; a++ {
		invLog := fieldOrder - uint16(f.log[a])
		if invLog >= fieldOrder {
			invLog -= fieldOrder
		}
		f.inv[a] = f.exp[invLog]
	}
}

// Add returns a + b in GF(2^8). Addition in characteristic 2 is XOR.
func (f *Field) Add(a, b byte) byte {
	return a ^ b
}

// Sub returns a - b in GF(2^8). Subtraction equals addition in
// characteristic 2.
func (f *Field) Sub(a, b byte) byte {
	return a ^ b
}

// Mul returns a * b in GF(2^8) using the pre-computed multiplication table.
// Multiplying by 0 yields 0 without a table lookup on the log side.
func (f *Field) Mul(a, b byte) byte {
	return f.mul[a][b]
}

// Div returns a / b in GF(2^8). Division by zero is a programming-contract
// violation inside the codec and panics.
func (f *Field) Div(a, b byte) byte {
	if b == 0 {
		panic("rs: division by zero")
	}
	if a == 0 {
		return 0
	}
	logRes := (uint16(f.log[a]) + fieldOrder - uint16(f.log[b])) % fieldOrder
	return f.exp[logRes]
}

// Inv returns the multiplicative inverse of a in GF(2^8). Panics if a is
// zero.
func (f *Field) Inv(a byte) byte {
	if a == 0 {
		panic("rs: inverse of zero")
	}
	return f.inv[a]
}

// Pow returns a^n in GF(2^8). By convention Pow(a, 0) is 1 for every a,
// and Pow(0, n) is 0 for n > 0.
func (f *Field) Pow(a byte, n int) byte {
	if n == 0 {
		return 1
	}
	if a == 0 {
		return 0
	}
	if n < 0 {
		a = f.Inv(a)
		n = -n
	}
	logRes := (uint32(f.log[a]) * uint32(n)) % fieldOrder
	return f.exp[logRes]
}

// Exp returns g^i where g is the primitive generator. Negative exponents
// wrap around the multiplicative group order.
func (f *Field) Exp(i int) byte {
	idx := i % fieldOrder
	if idx < 0 {
		idx += fieldOrder
	}
	return f.exp[idx]
}

// Log returns the discrete logarithm of a (base generator). Panics if a
// is zero; log(0) is undefined.
func (f *Field) Log(a byte) int {
	if a == 0 {
		panic("rs: log of zero")
	}
	return int(f.log[a])
}
