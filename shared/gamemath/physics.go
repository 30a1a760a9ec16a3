package gamemath

// ClampFloat constrains a value to the range [min, max].
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ApplyDeadzone zeroes analog axis values whose magnitude is below deadzone.
func ApplyDeadzone(value, deadzone float64) float64 {
	if value > -deadzone && value < deadzone {
		return 0
	}
	return value
}
