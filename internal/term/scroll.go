package term

// clampScroll bounds offset to [0, max(0, canvasDim-termDim)], the
// largest offset that still leaves the viewport full of canvas content.
func clampScroll(offset, canvasDim, termDim int) int {
	max := canvasDim - termDim
	if max < 0 {
		max = 0
	}
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}
