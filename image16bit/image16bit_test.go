package image16bit

import (
	"image"
	"image/color"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    RGB565
	}{
		{"black", 0, 0, 0, 0x0000},
		{"red", 255, 0, 0, 0xF800},
		{"green", 0, 255, 0, 0x07E0},
		{"blue", 0, 0, 255, 0x001F},
		{"white", 255, 255, 255, 0xFFFF},
		{"mid gray", 128, 128, 128, 0x7BEF},
		{"gray 0x88", 0x88, 0x88, 0x88, 0x8430},
		{"near black truncates to black", 1, 1, 1, 0x0000},
		{"near white truncates", 254, 254, 254, 0xF7DE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("Encode(%d, %d, %d) = 0x%04X, want 0x%04X",
					tt.r, tt.g, tt.b, uint16(got), uint16(tt.want))
			}
		})
	}
}

func TestEncodeChannelWidths(t *testing.T) {
	// The three component fields must never exceed their bit width for
	// any input triple.
	for c := 0; c <= 255; c++ {
		v := Encode(uint8(c), uint8(c), uint8(c))
		if r := v >> 11 & 0x1F; uint16(c)*31/255 != uint16(r) {
			t.Errorf("Encode red for %d = %d, want %d", c, r, uint16(c)*31/255)
		}
		if g := v >> 5 & 0x3F; uint16(c)*63/255 != uint16(g) {
			t.Errorf("Encode green for %d = %d, want %d", c, g, uint16(c)*63/255)
		}
		if b := v & 0x1F; uint16(c)*31/255 != uint16(b) {
			t.Errorf("Encode blue for %d = %d, want %d", c, b, uint16(c)*31/255)
		}
		// Channels may not bleed into each other.
		if full := v>>11&0x1F<<11 | v>>5&0x3F<<5 | v&0x1F; full != v {
			t.Errorf("Encode(%d, %d, %d) = 0x%04X has bits outside 5-6-5 fields", c, c, c, uint16(v))
		}
	}
}

func TestRGB565RGBA(t *testing.T) {
	tests := []struct {
		name       string
		c          RGB565
		r, g, b, a uint32
	}{
		{"black", 0x0000, 0x0000, 0x0000, 0x0000, 0xFFFF},
		{"red", 0xF800, 0xFFFF, 0x0000, 0x0000, 0xFFFF},
		{"green", 0x07E0, 0x0000, 0xFFFF, 0x0000, 0xFFFF},
		{"blue", 0x001F, 0x0000, 0x0000, 0xFFFF, 0xFFFF},
		{"white", 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF},
		{"mid gray", 0x7BEF, 0x7B7B, 0x7D7D, 0x7B7B, 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.r || g != tt.g || b != tt.b || a != tt.a {
				t.Errorf("RGBA() = (%#x, %#x, %#x, %#x), want (%#x, %#x, %#x, %#x)",
					r, g, b, a, tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
}

func TestRGB565ModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  RGB565
	}{
		{"rgb565 passthrough", RGB565(0x1234), 0x1234},
		{"black", color.Black, 0x0000},
		{"white", color.White, 0xFFFF},
		{"red rgba", color.RGBA{0xFF, 0x00, 0x00, 0xFF}, 0xF800},
		{"gray rgba", color.RGBA{0x88, 0x88, 0x88, 0xFF}, 0x8430},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RGB565Model.Convert(tt.input).(RGB565)
			if result != tt.want {
				t.Errorf("RGB565Model.Convert(%v) = 0x%04X, want 0x%04X",
					tt.input, uint16(result), uint16(tt.want))
			}
		})
	}
}

func TestNewBigEndian(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		wantStride int
		wantPixLen int
	}{
		{"240x240", image.Rect(0, 0, 240, 240), 480, 115200},
		{"4x2", image.Rect(0, 0, 4, 2), 8, 16},
		{"1x1", image.Rect(0, 0, 1, 1), 2, 2},
		{"offset rect", image.Rect(10, 20, 14, 22), 8, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewBigEndian(tt.rect)
			if img.Rect != tt.rect {
				t.Errorf("Rect = %v, want %v", img.Rect, tt.rect)
			}
			if img.Stride != tt.wantStride {
				t.Errorf("Stride = %d, want %d", img.Stride, tt.wantStride)
			}
			if len(img.Pix) != tt.wantPixLen {
				t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.wantPixLen)
			}
		})
	}
}

func TestBigEndianBytePacking(t *testing.T) {
	img := NewBigEndian(image.Rect(0, 0, 2, 1))

	img.SetRGB565(0, 0, 0xF800)
	img.SetRGB565(1, 0, 0x001F)

	// High byte first, in wire order.
	want := []byte{0xF8, 0x00, 0x00, 0x1F}
	for i, b := range want {
		if img.Pix[i] != b {
			t.Errorf("Pix[%d] = 0x%02X, want 0x%02X", i, img.Pix[i], b)
		}
	}
}

func TestBigEndianSetGet(t *testing.T) {
	img := NewBigEndian(image.Rect(0, 0, 4, 2))

	testCases := [][4]RGB565{
		{0x0000, 0xF800, 0x07E0, 0x001F},
		{0xFFFF, 0x7BEF, 0x1234, 0xABCD},
	}

	for y, row := range testCases {
		for x, val := range row {
			img.SetRGB565(x, y, val)
		}
	}

	for y, row := range testCases {
		for x, wantVal := range row {
			result := img.RGB565At(x, y)
			if result != wantVal {
				t.Errorf("RGB565At(%d, %d) = 0x%04X, want 0x%04X", x, y, uint16(result), uint16(wantVal))
			}
		}
	}
}

func TestBigEndianAt(t *testing.T) {
	img := NewBigEndian(image.Rect(0, 0, 2, 2))
	img.SetRGB565(0, 0, 0x07E0)

	c := img.At(0, 0)
	v, ok := c.(RGB565)
	if !ok {
		t.Errorf("At(0, 0) returned %T, want RGB565", c)
	}
	if v != 0x07E0 {
		t.Errorf("At(0, 0) = 0x%04X, want 0x07E0", uint16(v))
	}
}

func TestBigEndianSet(t *testing.T) {
	img := NewBigEndian(image.Rect(0, 0, 2, 2))

	// Set with the native type.
	img.Set(0, 0, RGB565(0xF800))
	if result := img.RGB565At(0, 0); result != 0xF800 {
		t.Errorf("After Set(0, 0, RGB565(0xF800)), RGB565At(0, 0) = 0x%04X, want 0xF800", uint16(result))
	}

	// Convert from standard color.
	img.Set(1, 0, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF})
	if result := img.RGB565At(1, 0); result != 0xFFFF {
		t.Errorf("After Set(1, 0, white), RGB565At(1, 0) = 0x%04X, want 0xFFFF", uint16(result))
	}
}

func TestBigEndianColorModel(t *testing.T) {
	img := NewBigEndian(image.Rect(0, 0, 4, 4))
	if img.ColorModel() != RGB565Model {
		t.Error("ColorModel() did not return RGB565Model")
	}
}

func TestBigEndianBounds(t *testing.T) {
	rect := image.Rect(10, 20, 14, 24)
	img := NewBigEndian(rect)
	if img.Bounds() != rect {
		t.Errorf("Bounds() = %v, want %v", img.Bounds(), rect)
	}
}

func TestBigEndianOutOfBounds(t *testing.T) {
	img := NewBigEndian(image.Rect(0, 0, 4, 4))

	// Out of bounds reads should return zero.
	if result := img.RGB565At(-1, 0); result != 0 {
		t.Errorf("RGB565At(-1, 0) = 0x%04X, want 0 (out of bounds)", uint16(result))
	}
	if result := img.RGB565At(0, -1); result != 0 {
		t.Errorf("RGB565At(0, -1) = 0x%04X, want 0 (out of bounds)", uint16(result))
	}
	if result := img.RGB565At(4, 0); result != 0 {
		t.Errorf("RGB565At(4, 0) = 0x%04X, want 0 (out of bounds)", uint16(result))
	}

	// Out of bounds writes should do nothing.
	img.SetRGB565(-1, 0, 0xFFFF)
	img.SetRGB565(0, -1, 0xFFFF)
	img.SetRGB565(4, 0, 0xFFFF)

	for i, b := range img.Pix {
		if b != 0 {
			t.Errorf("After out-of-bounds Set, Pix[%d] = 0x%02X, want 0", i, b)
			break
		}
	}
}

func TestBigEndianOffsetRect(t *testing.T) {
	rect := image.Rect(100, 50, 104, 52)
	img := NewBigEndian(rect)

	img.SetRGB565(100, 50, 0xABCD)

	if result := img.RGB565At(100, 50); result != 0xABCD {
		t.Errorf("SetRGB565(100, 50, 0xABCD) then RGB565At(100, 50) = 0x%04X, want 0xABCD", uint16(result))
	}

	// First pixel of the buffer regardless of the rect origin.
	if img.Pix[0] != 0xAB || img.Pix[1] != 0xCD {
		t.Errorf("Pix[0:2] = 0x%02X 0x%02X, want 0xAB 0xCD", img.Pix[0], img.Pix[1])
	}
}

func TestBigEndianPixOffset(t *testing.T) {
	img := NewBigEndian(image.Rect(0, 0, 8, 2))

	tests := []struct {
		x, y   int
		offset int
	}{
		{0, 0, 0},
		{1, 0, 2},
		{7, 0, 14},
		{0, 1, 16},
		{3, 1, 22},
	}

	for _, tt := range tests {
		if offset := img.PixOffset(tt.x, tt.y); offset != tt.offset {
			t.Errorf("PixOffset(%d, %d) = %d, want %d", tt.x, tt.y, offset, tt.offset)
		}
	}
}
