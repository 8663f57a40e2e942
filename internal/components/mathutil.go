package components

import "math"

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func sin32(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func cos32(x float32) float32 {
	return float32(math.Cos(float64(x)))
}
