package vmath

// Vec2 is a float64 2D vector in world units
type Vec2 struct {
	X, Y float64
}

// Vec3 is a float64 3D vector; Z is carried but not used by 2D projection
type Vec3 struct {
	X, Y, Z float64
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// V2Div divides component-wise; caller guards zero divisors
func V2Div(a, b Vec2) Vec2 {
	return Vec2{a.X / b.X, a.Y / b.Y}
}

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// XY drops the Z component
func (v Vec3) XY() Vec2 {
	return Vec2{v.X, v.Y}
}
