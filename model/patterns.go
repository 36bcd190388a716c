package model

// Glider travels one cell diagonally every four generations
var Glider = [][]bool{
	{false, true, false},
	{false, false, true},
	{true, true, true},
}

// Blinker is a period-2 oscillator
var Blinker = [][]bool{
	{true, true, true},
}

// Block is a still life
var Block = [][]bool{
	{true, true},
	{true, true},
}
