// Package icon synthesizes the weather and trend status icons from primitive
// shapes so every output format can draw them without image assets.
package icon

import (
	"math"

	"github.com/alexanderramin/cadrage/internal/domain"
)

type ShapeKind int

const (
	ShapeEllipse ShapeKind = iota
	ShapeRect
	ShapeRoundRect
	ShapeTriangle
	ShapePolygon
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeEllipse:
		return "ellipse"
	case ShapeRect:
		return "rect"
	case ShapeRoundRect:
		return "roundRect"
	case ShapeTriangle:
		return "triangle"
	case ShapePolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// Point is a coordinate. Inside an Icon it is a fraction of the bounding box;
// after Place it is absolute.
type Point struct {
	X, Y float64
}

// Shape is one drawing primitive. Triangles point up at Rotation 0; Rotation
// is in degrees clockwise around the shape's own center.
type Shape struct {
	Kind     ShapeKind
	X, Y     float64
	W, H     float64
	Rotation float64
	Fill     string
	Points   []Point
}

// Icon is a shape list expressed in the unit square.
type Icon struct {
	Name   string
	Shapes []Shape
}

// Box is an absolute bounding box in whatever unit the caller draws in.
type Box struct {
	X, Y, W, H float64
}

// Place scales the icon into box. Polygon points are mapped too.
func (ic Icon) Place(box Box) []Shape {
	out := make([]Shape, 0, len(ic.Shapes))
	for _, s := range ic.Shapes {
		placed := s
		placed.X = box.X + s.X*box.W
		placed.Y = box.Y + s.Y*box.H
		placed.W = s.W * box.W
		placed.H = s.H * box.H
		if len(s.Points) > 0 {
			placed.Points = make([]Point, len(s.Points))
			for i, p := range s.Points {
				placed.Points[i] = Point{X: box.X + p.X*box.W, Y: box.Y + p.Y*box.H}
			}
		}
		out = append(out, placed)
	}
	return out
}

// Fill colors, as RRGGBB hex.
const (
	ColorSun      = "F5B700"
	ColorCloud    = "A9B1BD"
	ColorStorm    = "5B6472"
	ColorStormAlt = "737C8A"
	ColorBolt     = "FFC800"
	ColorBetter   = "2E9E5B"
	ColorStable   = "F08C00"
	ColorWorse    = "D64545"
)

// boltPoints is the lightning bolt outline, as fractions of the bounding box.
var boltPoints = []Point{
	{X: 0.52, Y: 0.48},
	{X: 0.38, Y: 0.74},
	{X: 0.49, Y: 0.74},
	{X: 0.42, Y: 0.98},
	{X: 0.66, Y: 0.66},
	{X: 0.55, Y: 0.66},
	{X: 0.63, Y: 0.48},
}

func sunny() Icon {
	shapes := []Shape{{Kind: ShapeEllipse, X: 0.25, Y: 0.25, W: 0.5, H: 0.5, Fill: ColorSun}}
	// Eight rays centered on a ring of radius 0.38 around the disc center.
	const (
		rayLen   = 0.16
		rayThick = 0.06
		radius   = 0.38
	)
	for i := 0; i < 8; i++ {
		angle := float64(i) * 45
		rad := angle * math.Pi / 180
		cx := 0.5 + radius*math.Sin(rad)
		cy := 0.5 - radius*math.Cos(rad)
		shapes = append(shapes, Shape{
			Kind:     ShapeRect,
			X:        cx - rayThick/2,
			Y:        cy - rayLen/2,
			W:        rayThick,
			H:        rayLen,
			Rotation: angle,
			Fill:     ColorSun,
		})
	}
	return Icon{Name: string(domain.WeatherSunny), Shapes: shapes}
}

func cloudy() Icon {
	return Icon{Name: string(domain.WeatherCloudy), Shapes: []Shape{
		{Kind: ShapeRoundRect, X: 0.28, Y: 0.22, W: 0.44, H: 0.36, Fill: ColorCloud},
		{Kind: ShapeRoundRect, X: 0.08, Y: 0.40, W: 0.84, H: 0.36, Fill: ColorCloud},
	}}
}

func stormy() Icon {
	return Icon{Name: string(domain.WeatherStormy), Shapes: []Shape{
		{Kind: ShapeRoundRect, X: 0.30, Y: 0.10, W: 0.40, H: 0.30, Fill: ColorStormAlt},
		{Kind: ShapeRoundRect, X: 0.12, Y: 0.24, W: 0.76, H: 0.30, Fill: ColorStorm},
		{Kind: ShapePolygon, Fill: ColorBolt, Points: boltPoints},
	}}
}

func better() Icon {
	return Icon{Name: string(domain.ProgressBetter), Shapes: []Shape{
		{Kind: ShapeTriangle, X: 0.15, Y: 0.15, W: 0.7, H: 0.7, Fill: ColorBetter},
	}}
}

func stable() Icon {
	return Icon{Name: string(domain.ProgressStable), Shapes: []Shape{
		{Kind: ShapeRect, X: 0.08, Y: 0.42, W: 0.6, H: 0.16, Fill: ColorStable},
		// Rotated 90° the up-pointing triangle points right.
		{Kind: ShapeTriangle, X: 0.56, Y: 0.27, W: 0.4, H: 0.46, Rotation: 90, Fill: ColorStable},
	}}
}

func worse() Icon {
	return Icon{Name: string(domain.ProgressWorse), Shapes: []Shape{
		{Kind: ShapeTriangle, X: 0.15, Y: 0.15, W: 0.7, H: 0.7, Rotation: 180, Fill: ColorWorse},
	}}
}

// Weather returns the icon for w. Empty or unknown values get the cloudy icon.
func Weather(w domain.Weather) Icon {
	switch w {
	case domain.WeatherSunny:
		return sunny()
	case domain.WeatherStormy:
		return stormy()
	default:
		return cloudy()
	}
}

// Progress returns the icon for p. Empty or unknown values get the stable icon.
func Progress(p domain.Progress) Icon {
	switch p {
	case domain.ProgressBetter:
		return better()
	case domain.ProgressWorse:
		return worse()
	default:
		return stable()
	}
}

// ForReview returns the weather and progress icons of a review, which may be nil.
func ForReview(r *domain.Review) (weather, progress Icon) {
	if r == nil {
		return Weather(""), Progress("")
	}
	return Weather(r.Weather), Progress(r.Progress)
}
