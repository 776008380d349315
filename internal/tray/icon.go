package tray

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"runtime"
)

const iconSize = 64

var (
	idleBackground   = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	activeBackground = color.RGBA{R: 50, G: 120, B: 200, A: 255}
	glyphColor       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
)

// trayIcon returns the encoded icon for the given state. Windows wants an
// ICO, everywhere else takes the PNG directly.
func trayIcon(active bool) []byte {
	data := renderIcon(active)
	if runtime.GOOS == "windows" {
		return icoFromPNG(data)
	}
	return data
}

// renderIcon draws a play triangle on a solid background and encodes it as
// PNG.
func renderIcon(active bool) []byte {
	background := idleBackground
	if active {
		background = activeBackground
	}

	img := image.NewRGBA(image.Rect(0, 0, iconSize, iconSize))
	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			img.SetRGBA(x, y, background)
		}
	}

	// Right-pointing triangle, drawn as horizontal scanlines.
	left := iconSize / 4
	right := iconSize * 3 / 4
	top := iconSize / 5
	bottom := iconSize * 4 / 5
	mid := iconSize / 2
	for y := top; y <= bottom; y++ {
		var span float64
		if y <= mid {
			span = float64(y-top) / float64(mid-top)
		} else {
			span = float64(bottom-y) / float64(bottom-mid)
		}
		end := left + int(span*float64(right-left))
		for x := left; x <= end; x++ {
			img.SetRGBA(x, y, glyphColor)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		// Encoding an in-memory RGBA image cannot fail in practice.
		return nil
	}
	return buf.Bytes()
}

// icoFromPNG wraps PNG data in a single-image ICO container. Vista and later
// accept PNG-compressed entries.
func icoFromPNG(data []byte) []byte {
	var buf bytes.Buffer

	// ICONDIR: reserved, type 1 (icon), one entry.
	binary.Write(&buf, binary.LittleEndian, uint16(0)) //nolint:errcheck
	binary.Write(&buf, binary.LittleEndian, uint16(1)) //nolint:errcheck
	binary.Write(&buf, binary.LittleEndian, uint16(1)) //nolint:errcheck

	// ICONDIRENTRY: width, height, colors, reserved, planes, bpp, size, offset.
	buf.WriteByte(iconSize)
	buf.WriteByte(iconSize)
	buf.WriteByte(0)
	buf.WriteByte(0)
	binary.Write(&buf, binary.LittleEndian, uint16(1))         //nolint:errcheck
	binary.Write(&buf, binary.LittleEndian, uint16(32))        //nolint:errcheck
	binary.Write(&buf, binary.LittleEndian, uint32(len(data))) //nolint:errcheck
	binary.Write(&buf, binary.LittleEndian, uint32(6+16))      //nolint:errcheck

	buf.Write(data)
	return buf.Bytes()
}
