package core

// RP2040 on-die temperature sensor characteristic (datasheet section 4.9.5).
// The arithmetic stays in float32 so results match the single-precision
// firmware math bit for bit.
const (
	ADCResolutionBits = 12
	ADCMax            = 1<<ADCResolutionBits - 1

	ReferenceVolts float32 = 3.3

	sensorBaseCelsius float32 = 27.0
	sensorBaseVolts   float32 = 0.706
	sensorSlope       float32 = 0.001721 // V per degree C
)

// voltsPerCount converts an ADC code to volts.
const voltsPerCount = ReferenceVolts / (1 << ADCResolutionBits)

// ToVolts converts a raw ADC code to the sensed voltage.
func ToVolts(raw ADCValue) float32 {
	// Explicit conversion keeps the product rounded before any subtraction,
	// so the compiler cannot fuse it into a multiply-add.
	return float32(float32(raw) * voltsPerCount)
}

// ToCelsius applies the sensor's linear model to a raw ADC code. The result
// is not clamped: codes far from the sensor's working range (about 0.5 to
// 0.9 V) produce physically meaningless temperatures.
func ToCelsius(raw ADCValue) float32 {
	return sensorBaseCelsius - (ToVolts(raw)-sensorBaseVolts)/sensorSlope
}
