package tabbar

import "github.com/daptify14/tabgeom/internal/geom"

// ContentWidth returns the width left after horizontal padding, never negative.
func ContentWidth(padding geom.Edges, frameWidth float64) float64 {
	return geom.NonNegative(frameWidth - padding.Horizontal())
}

// ContentHeight returns the height left after vertical padding, never negative.
func ContentHeight(padding geom.Edges, frameHeight float64) float64 {
	return geom.NonNegative(frameHeight - padding.Vertical())
}

// contentPadding folds the grid padding into the bar padding.
func contentPadding(padding geom.Edges, gridPadding float64) geom.Edges {
	padding.Left += gridPadding
	padding.Right += gridPadding
	return padding
}
