package puzzle

import "math"

func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func sin32(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
