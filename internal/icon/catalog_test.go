package icon

import (
	"testing"

	"github.com/alexanderramin/cadrage/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countKind(shapes []Shape, kind ShapeKind) int {
	n := 0
	for _, s := range shapes {
		if s.Kind == kind {
			n++
		}
	}
	return n
}

func TestWeather_Sunny(t *testing.T) {
	ic := Weather(domain.WeatherSunny)
	assert.Equal(t, "sunny", ic.Name)
	assert.Equal(t, 1, countKind(ic.Shapes, ShapeEllipse))
	require.Equal(t, 8, countKind(ic.Shapes, ShapeRect))

	var rotations []float64
	for _, s := range ic.Shapes {
		if s.Kind == ShapeRect {
			rotations = append(rotations, s.Rotation)
		}
	}
	assert.Equal(t, []float64{0, 45, 90, 135, 180, 225, 270, 315}, rotations)
}

func TestWeather_Cloudy(t *testing.T) {
	ic := Weather(domain.WeatherCloudy)
	assert.Equal(t, 2, countKind(ic.Shapes, ShapeRoundRect))
	assert.Len(t, ic.Shapes, 2)
}

func TestWeather_Stormy(t *testing.T) {
	ic := Weather(domain.WeatherStormy)
	assert.Equal(t, 2, countKind(ic.Shapes, ShapeRoundRect))
	require.Equal(t, 1, countKind(ic.Shapes, ShapePolygon))

	bolt := ic.Shapes[len(ic.Shapes)-1]
	assert.Len(t, bolt.Points, 7)
	for _, p := range bolt.Points {
		assert.True(t, p.X >= 0 && p.X <= 1 && p.Y >= 0 && p.Y <= 1, "bolt point %v outside unit box", p)
	}

	// Storm clouds are darker and smaller than the cloudy icon.
	cloud := Weather(domain.WeatherCloudy)
	assert.NotEqual(t, cloud.Shapes[1].Fill, ic.Shapes[1].Fill)
	assert.Less(t, ic.Shapes[1].W, cloud.Shapes[1].W)
}

func TestProgress_Shapes(t *testing.T) {
	up := Progress(domain.ProgressBetter)
	require.Len(t, up.Shapes, 1)
	assert.Equal(t, ShapeTriangle, up.Shapes[0].Kind)
	assert.Equal(t, 0.0, up.Shapes[0].Rotation)

	down := Progress(domain.ProgressWorse)
	require.Len(t, down.Shapes, 1)
	assert.Equal(t, 180.0, down.Shapes[0].Rotation)

	flat := Progress(domain.ProgressStable)
	assert.Equal(t, 1, countKind(flat.Shapes, ShapeRect))
	assert.Equal(t, 1, countKind(flat.Shapes, ShapeTriangle))
}

func TestFallbacks(t *testing.T) {
	assert.Equal(t, "cloudy", Weather("").Name)
	assert.Equal(t, "cloudy", Weather("foggy").Name)
	assert.Equal(t, "stable", Progress("").Name)
	assert.Equal(t, "stable", Progress("sideways").Name)

	w, p := ForReview(nil)
	assert.Equal(t, "cloudy", w.Name)
	assert.Equal(t, "stable", p.Name)
}

func TestForReview(t *testing.T) {
	w, p := ForReview(&domain.Review{Weather: domain.WeatherSunny, Progress: domain.ProgressWorse})
	assert.Equal(t, "sunny", w.Name)
	assert.Equal(t, "worse", p.Name)
}

func TestPlace_ScalesIntoBox(t *testing.T) {
	ic := Icon{Shapes: []Shape{
		{Kind: ShapeRect, X: 0.5, Y: 0.25, W: 0.5, H: 0.5},
		{Kind: ShapePolygon, Points: []Point{{X: 0, Y: 0}, {X: 1, Y: 1}}},
	}}
	placed := ic.Place(Box{X: 10, Y: 20, W: 100, H: 40})

	assert.InDelta(t, 60, placed[0].X, 1e-9)
	assert.InDelta(t, 30, placed[0].Y, 1e-9)
	assert.InDelta(t, 50, placed[0].W, 1e-9)
	assert.InDelta(t, 20, placed[0].H, 1e-9)
	assert.Equal(t, []Point{{X: 10, Y: 20}, {X: 110, Y: 60}}, placed[1].Points)

	// The source icon is untouched.
	assert.Equal(t, Point{X: 1, Y: 1}, ic.Shapes[1].Points[1])
}

func TestEveryIconStaysInUnitBox(t *testing.T) {
	icons := []Icon{
		Weather(domain.WeatherSunny), Weather(domain.WeatherCloudy), Weather(domain.WeatherStormy),
		Progress(domain.ProgressBetter), Progress(domain.ProgressStable), Progress(domain.ProgressWorse),
	}
	for _, ic := range icons {
		for _, s := range ic.Shapes {
			if s.Kind == ShapePolygon {
				continue
			}
			assert.GreaterOrEqual(t, s.X, 0.0, ic.Name)
			assert.GreaterOrEqual(t, s.Y, 0.0, ic.Name)
			assert.LessOrEqual(t, s.X+s.W, 1.0+1e-9, ic.Name)
			assert.LessOrEqual(t, s.Y+s.H, 1.0+1e-9, ic.Name)
		}
	}
}
