package cloud

import "math"

// Noise3 is the scalar field behind all organic texture variation.
// Two octaves: a low-frequency shape term and a higher-frequency detail
// term at half amplitude. Range is [-1.5, 1.5]; palette thresholds in
// the texture code are calibrated against that span.
func Noise3(x, y, z float32) float32 {
	xd, yd, zd := float64(x), float64(y), float64(z)
	shape := math.Sin(xd*1.1+yd*0.7) * math.Cos(zd*0.9-yd*0.3)
	detail := math.Sin(xd*3.7-zd*2.1) * math.Cos(yd*3.1+xd*1.9)
	return float32(shape + 0.5*detail)
}
