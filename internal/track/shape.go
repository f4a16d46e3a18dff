package track

import (
	"fmt"
	"math"
)

// Shape selects the curve units are drawn along. It has no effect on
// production.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeFigureEight
	ShapeOval
	ShapeComplex

	shapeCount = 4
)

var shapeNames = [shapeCount]string{"Circle", "Figure-8", "Oval", "Complex"}

// ParseShape clamps a persisted track index into a valid shape.
func ParseShape(v int) Shape {
	if v < 0 || v >= shapeCount {
		return ShapeCircle
	}
	return Shape(v)
}

// Next cycles to the following shape.
func (s Shape) Next() Shape { return Shape((int(s) + 1) % shapeCount) }

func (s Shape) String() string {
	if s < 0 || s >= shapeCount {
		return fmt.Sprintf("shape(%d)", int(s))
	}
	return shapeNames[s]
}

// Position maps an angle on the loop to screen coordinates for a track of the
// given radius centred on (cx, cy).
func Position(shape Shape, t, radius, cx, cy float64) (float64, float64) {
	switch shape {
	case ShapeFigureEight:
		a := radius * 0.8
		return cx + a*math.Sin(t), cy + a*math.Sin(t)*math.Cos(t)
	case ShapeOval:
		a, b := radius*1.05, radius*0.6
		return cx + a*math.Cos(t), cy + b*math.Sin(t)
	case ShapeComplex:
		r := radius * 0.9 * math.Cos(3*t)
		return cx + r*math.Cos(t), cy + r*math.Sin(t)
	default:
		return cx + radius*math.Cos(t), cy + radius*math.Sin(t)
	}
}
