// Package blend defines the per-pixel blend classification signature.
//
// The edge classifier decides, for each corner of a source pixel, whether
// the corner participates in blending and how confidently. The four
// 2-bit corner states pack into a single byte, so a whole row of
// classifications is just a byte slice and rotating the signature by 90
// degrees is a bit rotation.
package blend

// Type is the classification of one pixel corner.
type Type uint8

const (
	// None marks a corner with no detected edge.
	None Type = iota
	// Normal marks a blendable edge that competes with neighboring
	// classifications.
	Normal
	// Dominant marks an edge strong enough to override the usual
	// suppression rules.
	Dominant
)

// Info packs the blend Type of a pixel's four corners, two bits each,
// in clockwise order starting at the top-left:
//
//	bits 0-1 top-left, 2-3 top-right, 4-5 bottom-right, 6-7 bottom-left
//
// The clockwise layout makes a 90 degree rotation of the signature a
// 2-bit rotate of the byte.
type Info uint8

// TopLeft returns the top-left corner state.
func (b Info) TopLeft() Type { return Type(b & 0x3) }

// TopRight returns the top-right corner state.
func (b Info) TopRight() Type { return Type(b >> 2 & 0x3) }

// BottomRight returns the bottom-right corner state.
func (b Info) BottomRight() Type { return Type(b >> 4 & 0x3) }

// BottomLeft returns the bottom-left corner state.
func (b Info) BottomLeft() Type { return Type(b >> 6 & 0x3) }

// AddTopLeft merges t into the top-left corner.
func (b *Info) AddTopLeft(t Type) { *b |= Info(t) }

// AddTopRight merges t into the top-right corner.
func (b *Info) AddTopRight(t Type) { *b |= Info(t) << 2 }

// AddBottomRight merges t into the bottom-right corner.
func (b *Info) AddBottomRight(t Type) { *b |= Info(t) << 4 }

// AddBottomLeft merges t into the bottom-left corner.
func (b *Info) AddBottomLeft(t Type) { *b |= Info(t) << 6 }

// Rotate returns the signature after steps clockwise 90 degree
// rotations of the pixel.
func (b Info) Rotate(steps int) Info {
	s := uint(steps&0x3) * 2
	return b<<s | b>>(8-s)
}

// Any reports whether any corner needs blending.
func (b Info) Any() bool { return b != 0 }
