package debugger

import (
	"math/rand/v2"

	"github.com/jetsetilly/test1942/hardware/spec"
)

type context struct {
	requestedSpec string
	rand          *rand.Rand
	audio         bool
}

func (ctx *context) Spec() spec.Spec {
	switch ctx.requestedSpec {
	case "60HZ", "STANDARD":
		return spec.Standard
	case "57HZ", "ORIGINAL":
		return spec.Original
	}

	panic("currently unsupported specification")
}

func (ctx *context) Reset() {
	ctx.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func (ctx *context) Rand8Bit() uint8 {
	return uint8(ctx.rand.IntN(256))
}

func (ctx *context) UseAudio() bool {
	return ctx.audio
}
