package cloud

import (
	"math"

	"github.com/pthm-cable/orrery/body"
)

// Sample maps a continuous index into an ordered palette.
// The index is floored and clamped to [0, len-1]. Empty palettes yield
// white and non-finite indices are treated as 0, so unclamped noise
// expressions can feed this directly without crashing the render loop.
func Sample(palette []body.RGB, index float32) body.RGB {
	if len(palette) == 0 {
		return body.White
	}
	idx := float64(index)
	if math.IsNaN(idx) || math.IsInf(idx, 0) {
		idx = 0
	}
	i := int(math.Floor(idx))
	if i < 0 {
		i = 0
	}
	if i >= len(palette) {
		i = len(palette) - 1
	}
	return palette[i]
}

// sampleWrapped maps a continuous index into a palette by modulo rather
// than clamping. The ring colorizer relies on the wraparound for its
// tri-banded look.
func sampleWrapped(palette []body.RGB, index float32) body.RGB {
	if len(palette) == 0 {
		return body.White
	}
	idx := float64(index)
	if math.IsNaN(idx) || math.IsInf(idx, 0) {
		idx = 0
	}
	i := int(math.Floor(idx)) % len(palette)
	if i < 0 {
		i += len(palette)
	}
	return palette[i]
}
