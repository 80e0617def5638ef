package ase

import (
	"bytes"
	"encoding/binary"
	"math"
	"reflect"
	"testing"

	"github.com/swatchgrab/swatchgrab/internal/colour"
)

func TestEncodeEmptyPalette(t *testing.T) {
	got := Encode(colour.NewPalette(nil))

	want := []byte{
		0x41, 0x53, 0x45, 0x46, // "ASEF"
		0x00, 0x01, // major version 1
		0x00, 0x00, // minor version 0
		0x00, 0x00, 0x00, 0x00, // block count 0
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode(empty) = % x, want % x", got, want)
	}
}

func TestEncodeSingleColour(t *testing.T) {
	palette := colour.NewPalette([]colour.RGB{{R: 255, G: 0, B: 170}})

	got := Encode(palette)

	// 12-byte header plus one 40-byte colour block.
	if len(got) != 52 {
		t.Fatalf("encoded length = %d, want 52", len(got))
	}

	if blockCount := binary.BigEndian.Uint32(got[8:12]); blockCount != 1 {
		t.Errorf("block count = %d, want 1", blockCount)
	}
	if blockType := binary.BigEndian.Uint16(got[12:14]); blockType != blockTypeColor {
		t.Errorf("block type = 0x%04x, want 0x%04x", blockType, blockTypeColor)
	}
	if blockLen := binary.BigEndian.Uint32(got[14:18]); blockLen != 34 {
		t.Errorf("block length = %d, want 34", blockLen)
	}

	// Name length counts the 6 hex characters plus the null terminator.
	if nameLen := binary.BigEndian.Uint16(got[18:20]); nameLen != 7 {
		t.Errorf("name length = %d, want 7", nameLen)
	}

	// "FF00AA" as big-endian UTF-16 followed by a null terminator.
	wantName := []byte{
		0x00, 'F', 0x00, 'F', 0x00, '0', 0x00, '0', 0x00, 'A', 0x00, 'A',
		0x00, 0x00,
	}
	if !bytes.Equal(got[20:34], wantName) {
		t.Errorf("name bytes = % x, want % x", got[20:34], wantName)
	}

	if model := string(got[34:38]); model != "RGB " {
		t.Errorf("colour model = %q, want \"RGB \"", model)
	}

	r := math.Float32frombits(binary.BigEndian.Uint32(got[38:42]))
	g := math.Float32frombits(binary.BigEndian.Uint32(got[42:46]))
	b := math.Float32frombits(binary.BigEndian.Uint32(got[46:50]))
	if r != 1.0 {
		t.Errorf("red channel = %v, want 1.0", r)
	}
	if g != 0.0 {
		t.Errorf("green channel = %v, want 0.0", g)
	}
	if math.Abs(float64(b)-170.0/255.0) > 1e-7 {
		t.Errorf("blue channel = %v, want %v", b, 170.0/255.0)
	}

	if colorType := binary.BigEndian.Uint16(got[50:52]); colorType != colorTypeNormal {
		t.Errorf("colour type = 0x%04x, want 0x%04x", colorType, colorTypeNormal)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	palette := colour.NewPalette([]colour.RGB{
		{R: 12, G: 34, B: 56},
		{R: 200, G: 100, B: 0},
		{R: 255, G: 255, B: 255},
	})

	first := Encode(palette)
	for i := 0; i < 3; i++ {
		if next := Encode(palette); !bytes.Equal(first, next) {
			t.Fatalf("encoding run %d produced different bytes", i)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		colors []colour.RGB
	}{
		{
			name:   "empty",
			colors: nil,
		},
		{
			name:   "single",
			colors: []colour.RGB{{R: 255, G: 0, B: 170}},
		},
		{
			name: "several",
			colors: []colour.RGB{
				{R: 0, G: 0, B: 0},
				{R: 17, G: 34, B: 51},
				{R: 128, G: 128, B: 128},
				{R: 255, G: 255, B: 255},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := Encode(colour.NewPalette(tt.colors))

			palette, names, err := Decode(encoded)
			if err != nil {
				t.Fatalf("Decode() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(palette.Colors, tt.colors) {
				t.Errorf("round trip colours = %+v, want %+v", palette.Colors, tt.colors)
			}
			for i, c := range tt.colors {
				if names[i] != c.HexName() {
					t.Errorf("name %d = %q, want %q", i, names[i], c.HexName())
				}
			}
		})
	}
}

func TestEncodeTotalFileLength(t *testing.T) {
	// Total length is 12 (header) + 40 per colour block: 6 bytes of block
	// header and a 34-byte body for a 6-character name.
	for _, n := range []int{0, 1, 2, 10} {
		colors := make([]colour.RGB, n)
		for i := range colors {
			colors[i] = colour.RGB{R: uint8(i), G: uint8(i * 3), B: uint8(i * 7)}
		}

		got := Encode(colour.NewPalette(colors))
		want := 12 + 40*n
		if len(got) != want {
			t.Errorf("Encode(%d colours) length = %d, want %d", n, len(got), want)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	valid := Encode(colour.NewPalette([]colour.RGB{{R: 1, G: 2, B: 3}}))

	badSignature := bytes.Clone(valid)
	badSignature[0] = 'X'

	badVersion := bytes.Clone(valid)
	badVersion[5] = 9

	badModel := bytes.Clone(valid)
	copy(badModel[34:38], "CMYK")

	truncated := valid[:len(valid)-4]

	tests := []struct {
		name string
		data []byte
	}{
		{name: "too short", data: []byte{0x41, 0x53}},
		{name: "bad signature", data: badSignature},
		{name: "bad version", data: badVersion},
		{name: "non-rgb model", data: badModel},
		{name: "truncated block", data: truncated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Decode(tt.data); err == nil {
				t.Error("Decode() expected error, got nil")
			}
		})
	}
}
