// Package gc9a01a controls a GC9A01A round LCD display via SPI.
//
// The GC9A01A is a 16-bit color TFT controller driving the 240x240 round
// panels used in smart watches and dial-style gauges.
// This driver implements the display.Drawer interface from periph.io.
//
// # Display Characteristics
//
// - Fixed 240x240 geometry (the panel is round; the frame is square)
// - 16-bit RGB565 color, sent high byte first
// - 4-wire SPI command/data protocol at up to 40MHz
// - Vendor power-on calibration sequence replayed verbatim at setup
// - One-shot bus self-test and periodic diagnostic reporting
//
// # Hardware Connection
//
// Connect the GC9A01A display to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL/CLK     → SPI Clock (SCLK)
//	SDA/MOSI    → SPI Data (MOSI)
//	DC          → GPIO (any available pin, required)
//	RES         → GPIO (any available pin, required)
//	CS          → SPI Chip Select
//	BLK         → Optional: GPIO for backlight control
//
// The DC (data/command) and RES (reset) pins are required: the driver
// refuses to construct without them. The command/data select level is
// always set before chip select asserts, matching the controller's
// timing requirements.
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"image/color"
//
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/gc9a01a"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI port
//		spiPort, _ := spireg.Open("")
//
//		// Get the control GPIO pins
//		dcPin := gpioreg.ByName("GPIO25")
//		rstPin := gpioreg.ByName("GPIO27")
//
//		// Create device
//		dev, _ := gc9a01a.NewSPI(spiPort, dcPin, rstPin, nil)
//		defer dev.Halt()
//
//		// Reset the controller and replay the power-on sequence
//		if err := dev.Setup(); err != nil {
//			panic(err)
//		}
//
//		// Fill the panel
//		dev.FillScreen(color.RGBA{G: 255, A: 255})
//	}
//
// # Lifecycle
//
// The driver has a two-phase lifecycle. NewSPI validates the pins and
// configures the bus; Setup performs the hardware reset, replays the
// controller's initialization script (software reset, sleep-out, pixel
// format, memory access control, the vendor calibration block, then
// display-on) and paints the panel red as a liveness check. Drawing
// calls made before Setup completes are dropped without touching the
// bus. A successful Setup never re-runs; after a failure it can be
// called again and starts over from the reset.
//
// Update is the diagnostics entry point, meant to be called on a fixed
// period (one second works well). On the 20th call after setup it runs
// a one-shot bus self-test (a status read, logged and forgotten), and
// every 20th call it logs a status report with readiness, geometry and
// the backlight level. Diagnostics are pure observability: they never
// change driver state.
//
// All observability goes through zerolog's global logger; silence it or
// redirect it with the usual zerolog/log facilities.
//
// # Drawing Modes
//
// The driver streams pixels straight to the panel; there is no
// framebuffer and no differential update. Three paths are available:
//
// ## Single Pixels
//
// SetPixel programs a one-pixel address window and writes one RGB565
// word. Out-of-bounds coordinates are ignored, not clamped:
//
//	dev.SetPixel(120, 120, color.RGBA{R: 255, A: 255})
//
// ## Full-Panel Fill
//
// FillScreen writes one color for every panel pixel inside a single
// bus bracket:
//
//	dev.FillScreen(color.Black)
//
// ## Images
//
// Draw converts any image.Image region and streams it in one burst. A
// full-frame *image16bit.BigEndian source is already in wire order and
// is sent without conversion; Write accepts the same raw layout as a
// plain byte slice:
//
//	img := image16bit.NewBigEndian(dev.Bounds())
//	// ... compose into img ...
//	dev.Draw(dev.Bounds(), img, image.Point{})
//
// # Colors
//
// The panel takes RGB565: 5 bits red, 6 bits green, 5 bits blue. Use the
// image16bit package for native colors and frames:
//
//	// Pure red (0xF800)
//	red := image16bit.Encode(255, 0, 0)
//
//	// Pure green (0x07E0)
//	green := image16bit.Encode(0, 255, 0)
//
// Standard Go colors are converted automatically on every drawing call.
//
// # Datasheet
//
// For register descriptions and timing information, see:
// https://www.buydisplay.com/download/ic/GC9A01A.pdf
//
// # Compatibility with periph.io
//
// This driver implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
//
// It can be used with any periph.io tool or library expecting a
// display.Drawer.
package gc9a01a
