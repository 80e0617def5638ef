// Package ase encodes and decodes Adobe Swatch Exchange (ASE) palette files.
//
// Only version 1.0 files containing RGB colour-entry blocks are produced;
// group blocks and non-RGB colour models are outside the write path. All
// multi-byte integers are big-endian.
package ase

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf16"

	"github.com/swatchgrab/swatchgrab/internal/colour"
)

const (
	headerSize = 12

	versionMajor = 1
	versionMinor = 0

	blockTypeColor      = 0x0001
	blockTypeGroupStart = 0xc001
	blockTypeGroupEnd   = 0xc002

	// Normal colour, as opposed to 0x0000 global / 0x0001 spot.
	colorTypeNormal = 0x0002

	colorModelRGB = "RGB "
)

var signature = [4]byte{'A', 'S', 'E', 'F'}

// blockBodySize returns the byte length of a colour block body for a swatch
// name of the given length in UTF-16 code units (without the null
// terminator): name-length field, name characters, null terminator, colour
// model tag, three float32 channels and the colour type.
func blockBodySize(nameLen int) int {
	return 2 + 2*nameLen + 2 + 4 + 12 + 2
}

// Encode serializes a palette into ASE bytes. Swatch names are the uppercase
// hex string of each colour. Encoding is total: any palette, including the
// empty one, produces a valid byte stream, and the same palette always
// produces the same bytes.
func Encode(p *colour.Palette) []byte {
	names := make([][]uint16, p.Len())
	total := headerSize
	for i, c := range p.Colors {
		names[i] = utf16.Encode([]rune(c.HexName()))
		total += 6 + blockBodySize(len(names[i]))
	}

	buf := make([]byte, total)
	copy(buf[0:4], signature[:])
	binary.BigEndian.PutUint16(buf[4:6], versionMajor)
	binary.BigEndian.PutUint16(buf[6:8], versionMinor)
	binary.BigEndian.PutUint32(buf[8:12], uint32(p.Len()))

	off := headerSize
	for i, c := range p.Colors {
		name := names[i]
		body := blockBodySize(len(name))

		binary.BigEndian.PutUint16(buf[off:], blockTypeColor)
		binary.BigEndian.PutUint32(buf[off+2:], uint32(body))
		off += 6

		// Name length counts the trailing null terminator.
		binary.BigEndian.PutUint16(buf[off:], uint16(len(name)+1))
		off += 2
		for _, u := range name {
			binary.BigEndian.PutUint16(buf[off:], u)
			off += 2
		}
		binary.BigEndian.PutUint16(buf[off:], 0)
		off += 2

		copy(buf[off:], colorModelRGB)
		off += 4

		binary.BigEndian.PutUint32(buf[off:], math.Float32bits(float32(c.R)/255.0))
		binary.BigEndian.PutUint32(buf[off+4:], math.Float32bits(float32(c.G)/255.0))
		binary.BigEndian.PutUint32(buf[off+8:], math.Float32bits(float32(c.B)/255.0))
		off += 12

		binary.BigEndian.PutUint16(buf[off:], colorTypeNormal)
		off += 2
	}

	return buf
}

// Decode parses an ASE byte stream, returning the palette and the swatch
// names in file order. Group blocks are skipped; a colour entry with a
// non-RGB colour model is an error.
func Decode(data []byte) (*colour.Palette, []string, error) {
	if len(data) < headerSize {
		return nil, nil, fmt.Errorf("ase: file too short: %d bytes", len(data))
	}
	if [4]byte(data[0:4]) != signature {
		return nil, nil, fmt.Errorf("ase: bad signature %q", data[0:4])
	}
	major := binary.BigEndian.Uint16(data[4:6])
	if major != versionMajor {
		return nil, nil, fmt.Errorf("ase: unsupported version %d.%d", major, binary.BigEndian.Uint16(data[6:8]))
	}
	blockCount := binary.BigEndian.Uint32(data[8:12])

	var colors []colour.RGB
	var names []string

	off := headerSize
	for i := uint32(0); i < blockCount; i++ {
		if off+6 > len(data) {
			return nil, nil, fmt.Errorf("ase: truncated block header at offset %d", off)
		}
		blockType := binary.BigEndian.Uint16(data[off:])
		blockLen := int(int32(binary.BigEndian.Uint32(data[off+2:])))
		off += 6
		if blockLen < 0 || off+blockLen > len(data) {
			return nil, nil, fmt.Errorf("ase: block length %d exceeds file at offset %d", blockLen, off)
		}
		body := data[off : off+blockLen]
		off += blockLen

		switch blockType {
		case blockTypeGroupStart, blockTypeGroupEnd:
			continue
		case blockTypeColor:
		default:
			return nil, nil, fmt.Errorf("ase: unknown block type 0x%04x", blockType)
		}

		name, rest, err := parseName(body)
		if err != nil {
			return nil, nil, err
		}
		if len(rest) < 4+12+2 {
			return nil, nil, fmt.Errorf("ase: colour block body too short for %q", name)
		}
		model := string(rest[0:4])
		if model != colorModelRGB {
			return nil, nil, fmt.Errorf("ase: unsupported colour model %q", model)
		}

		colors = append(colors, colour.RGB{
			R: channelByte(rest[4:8]),
			G: channelByte(rest[8:12]),
			B: channelByte(rest[12:16]),
		})
		names = append(names, name)
	}

	return colour.NewPalette(colors), names, nil
}

// parseName reads the length-prefixed, null-terminated UTF-16 swatch name
// from the start of a colour block body, returning the name and the
// remainder of the body.
func parseName(body []byte) (string, []byte, error) {
	if len(body) < 2 {
		return "", nil, fmt.Errorf("ase: colour block missing name length")
	}
	nameLen := int(binary.BigEndian.Uint16(body[0:2]))
	if nameLen < 1 || 2+2*nameLen > len(body) {
		return "", nil, fmt.Errorf("ase: invalid name length %d", nameLen)
	}

	units := make([]uint16, nameLen)
	for i := range units {
		units[i] = binary.BigEndian.Uint16(body[2+2*i:])
	}
	if units[nameLen-1] != 0 {
		return "", nil, fmt.Errorf("ase: swatch name missing null terminator")
	}

	return string(utf16.Decode(units[:nameLen-1])), body[2+2*nameLen:], nil
}

// channelByte converts a big-endian float32 channel in [0.0, 1.0] back to its
// 8-bit value.
func channelByte(b []byte) uint8 {
	f := math.Float32frombits(binary.BigEndian.Uint32(b))
	v := math.Round(float64(f) * 255.0)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
