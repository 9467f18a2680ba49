package config

// Melody is the ordered note table. One star is placed per entry and notes
// play in this order as stars are collected.
var Melody = []float64{
	261.63, 261.63, 392.0, 392.0, 440.0, 440.0, 392.0, 349.23, 349.23, 329.63,
	329.63, 293.66, 293.66, 261.63,
}
