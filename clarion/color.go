/* This file is part of clarion-go.
 * Copyright (C) 2025 the clarion-go authors.
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with clarion-go.  If not, see <http://www.gnu.org/licenses/>.
 */

package clarion

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// MinColor is the minimum packed color value, representing black.
	MinColor int32 = 0

	// MaxColor is the maximum packed color value, representing white.
	MaxColor int32 = 16777215
)

// Color is a color in the Clarion color format, a 24-bit integer packing the
// red channel in the least significant byte, then green, then blue. Note the
// layout is the reverse of the conventional 0xRRGGBB packing.
type Color struct {
	packed int32
}

// NewColor returns a Color holding the given packed value, or ErrOutOfRange
// when the value is outside [MinColor, MaxColor].
func NewColor(packed int32) (Color, error) {
	if packed < MinColor || packed > MaxColor {
		return Color{}, ErrOutOfRange
	}
	return Color{packed: packed}, nil
}

// ColorOf returns the packed encoding of an RGB triple. It always succeeds;
// every triple packs into [MinColor, MaxColor].
func ColorOf(c RGBColor) Color {
	return Color{packed: EncodeColor(c)}
}

// Packed returns the raw packed color value.
func (c Color) Packed() int32 {
	return c.packed
}

// RGB returns the channel triple this Color represents.
func (c Color) RGB() RGBColor {
	return DecodeColor(c.packed)
}

func (c Color) String() string {
	return c.RGB().Hex()
}

// RGBColor is a color as three independent 8-bit channels. Any combination
// of channel values is legal.
type RGBColor struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// RGBColorOf quantizes a general-purpose color to 8-bit channels.
func RGBColorOf(c colorful.Color) RGBColor {
	r, g, b := c.RGB255()
	return RGBColor{Red: r, Green: g, Blue: b}
}

// Colorful returns the triple as a go-colorful color, for blending, distance
// and color-space conversions.
func (c RGBColor) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.Red) / 255.0,
		G: float64(c.Green) / 255.0,
		B: float64(c.Blue) / 255.0,
	}
}

// Hex renders the triple as a conventional #rrggbb string.
func (c RGBColor) Hex() string {
	return c.Colorful().Hex()
}

// EncodeColor packs an RGB triple into the Clarion layout. Channels are
// widened before multiplying so no sign extension occurs.
func EncodeColor(c RGBColor) int32 {
	return int32(c.Red) + int32(c.Green)*256 + int32(c.Blue)*65536
}

// DecodeColor unpacks a Clarion color value into its channel triple. The
// value must lie in [MinColor, MaxColor]; NewColor enforces this.
func DecodeColor(packed int32) RGBColor {
	return RGBColor{
		Red:   uint8(packed % 256),
		Green: uint8(packed / 256 % 256),
		Blue:  uint8(packed / 65536),
	}
}
