package coloring

import "github.com/gogpu/imview/internal/mat"

// Reorder matrices, written row by row. Each row produces one output
// channel (R, G, B, A) from the input channels.
var (
	identity = mat.Identity4()

	redAsGrayscale = mat.Rows(
		[4]float32{1, 0, 0, 0},
		[4]float32{1, 0, 0, 0},
		[4]float32{1, 0, 0, 0},
		[4]float32{0, 0, 0, 1},
	)

	rgbToGrayscale = mat.Rows(
		[4]float32{0.3, 0.59, 0.11, 0},
		[4]float32{0.3, 0.59, 0.11, 0},
		[4]float32{0.3, 0.59, 0.11, 0},
		[4]float32{0, 0, 0, 1},
	)

	rgbToR = mat.Rows(
		[4]float32{1, 0, 0, 0},
		[4]float32{0, 0, 0, 0},
		[4]float32{0, 0, 0, 0},
		[4]float32{0, 0, 0, 1},
	)

	rgbToG = mat.Rows(
		[4]float32{0, 0, 0, 0},
		[4]float32{0, 1, 0, 0},
		[4]float32{0, 0, 0, 0},
		[4]float32{0, 0, 0, 1},
	)

	rgbToB = mat.Rows(
		[4]float32{0, 0, 0, 0},
		[4]float32{0, 0, 0, 0},
		[4]float32{0, 0, 1, 0},
		[4]float32{0, 0, 0, 1},
	)

	rgbToBGR = mat.Rows(
		[4]float32{0, 0, 1, 0},
		[4]float32{0, 1, 0, 0},
		[4]float32{1, 0, 0, 0},
		[4]float32{0, 0, 0, 1},
	)

	// ignoreAlpha drops the source alpha; the caller adds the datatype max back.
	ignoreAlpha = mat.Rows(
		[4]float32{1, 0, 0, 0},
		[4]float32{0, 1, 0, 0},
		[4]float32{0, 0, 1, 0},
		[4]float32{0, 0, 0, 0},
	)

	// rgToRedAlpha moves a gray+alpha pair sampled as (R, G) into (R, A).
	rgToRedAlpha = mat.Rows(
		[4]float32{1, 0, 0, 0},
		[4]float32{0, 0, 0, 0},
		[4]float32{0, 0, 0, 0},
		[4]float32{0, 1, 0, 0},
	)
)

func onlyAlpha(v float32) mat.Vec4 { return mat.Vec4{0, 0, 0, v} }
