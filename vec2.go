package weft

// Vec2 is a 2-dimensional vector of x and y components. It is used
// throughout the engine for positions and sizes; arithmetic on unsigned
// component types saturates rather than wrapping.
type Vec2[T Number] struct {
	X T
	Y T
}

// Number is the set of integer types Vec2 is instantiated with. Terminal
// coordinates and sizes are never negative, so only unsigned types are
// supported; this also makes saturating arithmetic well defined.
type Number interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// NewVec2 builds a vector from its components.
func NewVec2[T Number](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Swap returns a copy with x and y exchanged.
func (v Vec2[T]) Swap() Vec2[T] {
	return Vec2[T]{X: v.Y, Y: v.X}
}

// Swapped exchanges x and y in place.
func (v *Vec2[T]) Swapped() {
	v.X, v.Y = v.Y, v.X
}

// MapVec2 applies f to both components.
func MapVec2[T, U Number](v Vec2[T], f func(T) U) Vec2[U] {
	return Vec2[U]{X: f(v.X), Y: f(v.Y)}
}

// Sum returns x + y, saturating at the type's max value.
func (v Vec2[T]) Sum() T {
	return addSat(v.X, v.Y)
}

// Product returns x * y, saturating at the type's max value.
func (v Vec2[T]) Product() T {
	if v.X != 0 && v.Y > ^T(0)/v.X {
		return ^T(0)
	}
	return v.X * v.Y
}

// Min returns the component-wise minimum of v and other.
func (v Vec2[T]) Min(other Vec2[T]) Vec2[T] {
	return Vec2[T]{X: minT(v.X, other.X), Y: minT(v.Y, other.Y)}
}

// Max returns the component-wise maximum of v and other.
func (v Vec2[T]) Max(other Vec2[T]) Vec2[T] {
	return Vec2[T]{X: maxT(v.X, other.X), Y: maxT(v.Y, other.Y)}
}

// MinMax returns the component-wise minimum and maximum of v and other.
func (v Vec2[T]) MinMax(other Vec2[T]) (Vec2[T], Vec2[T]) {
	return v.Min(other), v.Max(other)
}

// Add returns the component-wise sum, saturating at the type's max value.
func (v Vec2[T]) Add(other Vec2[T]) Vec2[T] {
	return Vec2[T]{X: addSat(v.X, other.X), Y: addSat(v.Y, other.Y)}
}

// Sub returns the component-wise difference, saturating at zero.
func (v Vec2[T]) Sub(other Vec2[T]) Vec2[T] {
	return Vec2[T]{X: subSat(v.X, other.X), Y: subSat(v.Y, other.Y)}
}

func minT[T Number](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func maxT[T Number](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// addSat adds two values of an unsigned integer type, saturating
// at the maximum representable value instead of wrapping on overflow.
func addSat[T Number](a, b T) T {
	sum := a + b
	if sum < a || sum < b {
		return ^T(0)
	}
	return sum
}

// subSat subtracts b from a, saturating at zero instead of wrapping.
func subSat[T Number](a, b T) T {
	if b > a {
		return 0
	}
	return a - b
}
