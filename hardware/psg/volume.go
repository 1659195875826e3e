package psg

// logarithmic amplitude table. each step is roughly 3dB. the loudest value
// is the largest value a single channel can output
var volume = [16]int16{
	0, 449, 672, 954, 1386, 2025, 2775, 4486,
	5541, 8673, 11557, 14742, 18690, 22521, 27793, 32767,
}
