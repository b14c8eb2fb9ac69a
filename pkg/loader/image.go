package loader

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/eng618/nonosolve/pkg/model"
)

// blackThreshold is the luminance below which a pixel counts as black
// (Fill); above it, the pixel counts as white (Empty).
const blackThreshold = 128

// LoadImage decodes a monochrome raster (black=Fill, white=Empty) into a
// Board: the image itself becomes the board's fully-determined reference
// Solution grid, row/column instructions are derived by run-length
// encoding it, and the board's working Grid starts fully Unset. The solver
// only ever consumes the derived instructions.
func LoadImage(r io.Reader) (*model.Board, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("loader: decoding image: %w", err)
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	solution := model.NewGrid(height, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			state := model.Empty
			if isBlack(img.At(bounds.Min.X+x, bounds.Min.Y+y)) {
				state = model.Fill
			}
			solution.SetState(model.Location{Row: y, Column: x}, state)
		}
	}

	rowIns := make([]model.RunInstructions, height)
	for y := 0; y < height; y++ {
		rowIns[y] = model.RunInstructionsFromLine(solution.Row(y))
	}
	colIns := make([]model.RunInstructions, width)
	for x := 0; x < width; x++ {
		colIns[x] = model.RunInstructionsFromLine(solution.Column(x))
	}

	board := model.NewBoard(rowIns, colIns)
	board.Solution = solution
	return board, nil
}

func isBlack(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	// RGBA returns 16-bit-scaled components; average and rescale to 8-bit.
	luminance := (r + g + b) / 3 >> 8
	return luminance < blackThreshold
}

// DumpImage encodes grid as a monochrome PNG, black=Fill, white otherwise
// (Unset cells are written as Empty). Pass a board's Grid to dump its
// current (possibly partial) state, or its Solution to dump the
// fully-determined reference image.
func DumpImage(w io.Writer, grid *model.Grid) error {
	rows, columns := grid.Size()
	img := image.NewGray(image.Rect(0, 0, columns, rows))
	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			shade := color.Gray{Y: 255}
			if grid.State(model.Location{Row: r, Column: c}) == model.Fill {
				shade = color.Gray{Y: 0}
			}
			img.SetGray(c, r, shade)
		}
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("loader: encoding image: %w", err)
	}
	return nil
}
