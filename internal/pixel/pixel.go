// Package pixel provides the packed RGBA8 pixel representation used by
// the scaling engine.
//
// Pixels travel through the engine as single uint32 values so that
// equality checks and copies in the hot loop compile to word operations.
// The packing matches the little-endian byte order of a flat RGBA buffer:
// loading four bytes R,G,B,A with encoding/binary yields R in the low
// byte and A in the high byte.
package pixel

import "encoding/binary"

// Pixel is one RGBA8 pixel packed as 0xAABBGGRR.
type Pixel uint32

// New packs the four channels into a Pixel.
func New(r, g, b, a uint8) Pixel {
	return Pixel(uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24)
}

// R returns the red channel.
func (p Pixel) R() uint8 { return uint8(p) }

// G returns the green channel.
func (p Pixel) G() uint8 { return uint8(p >> 8) }

// B returns the blue channel.
func (p Pixel) B() uint8 { return uint8(p >> 16) }

// A returns the alpha channel.
func (p Pixel) A() uint8 { return uint8(p >> 24) }

// Load reads pixel i from a flat RGBA buffer.
func Load(buf []byte, i int) Pixel {
	return Pixel(binary.LittleEndian.Uint32(buf[i*4:]))
}

// Store writes pixel i of a flat RGBA buffer.
func Store(buf []byte, i int, p Pixel) {
	binary.LittleEndian.PutUint32(buf[i*4:], uint32(p))
}

// Gradient mixes front into back with weight m/n, applied uniformly to
// all four channels. Each channel is rounded to nearest; for m <= n the
// result cannot leave [0,255], so no clamping is required.
func Gradient(m, n uint32, front, back Pixel) Pixel {
	mix := func(f, b uint8) uint32 {
		return (uint32(f)*m + uint32(b)*(n-m) + n/2) / n
	}
	return Pixel(mix(front.R(), back.R()) |
		mix(front.G(), back.G())<<8 |
		mix(front.B(), back.B())<<16 |
		mix(front.A(), back.A())<<24)
}
