// Package image16bit provides a 16-bit RGB565 image format for the GC9A01A display controller.
//
// The GC9A01A takes pixel data as 16-bit RGB565 words sent high byte first.
// Pixels are therefore stored two bytes each in wire order, so a composed
// frame can be streamed to the controller without conversion.
//
// Memory layout example for a 2-pixel row of pure red (0xF800) and pure
// blue (0x001F):
//
//	Pixels: 0          1
//	Colors: 0xF800     0x001F
//	Bytes:  0xF8 0x00  0x00 0x1F
//
// This package provides:
//
// - RGB565: A color type packing 5 bits red, 6 bits green, 5 bits blue
// - RGB565Model: A color model for converting standard Go colors to RGB565
// - BigEndian: An image.Image implementation in GC9A01A wire order
//
// Example usage:
//
//	// Create a 240x240 frame
//	img := image16bit.NewBigEndian(image.Rect(0, 0, 240, 240))
//
//	// Set a pixel to pure green
//	img.SetRGB565(10, 20, image16bit.Encode(0, 255, 0))
//
//	// Get a pixel
//	c := img.RGB565At(10, 20)
//	println(uint16(c)) // Output: 2016 (0x07E0)
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(image16bit.Encode(255, 255, 255)), image.Point{}, draw.Src)
package image16bit
