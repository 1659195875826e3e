package clocks

const Mhz = 1000000

// the board's master crystal. every other clock is derived from it
const Master = 12 * Mhz

const (
	MainCPU  = Master / 3 // 4MHz
	SoundCPU = Master / 4 // 3MHz
	PSG      = Master / 8 // 1.5MHz
)

// SliceCycles returns the number of cycles a processor running at clk should
// execute in one slice of a frame. the calculation is made in integer steps
// and the result is always a multiple of four
func SliceCycles(clk int, frameRate int, slices int) int {
	return clk / frameRate / slices * 4
}
