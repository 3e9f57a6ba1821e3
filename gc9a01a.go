// Package gc9a01a controls a GC9A01A round LCD display via SPI.
//
// The GC9A01A is a 16-bit color TFT controller driving the 240x240 round
// panels found on smart watches and dial gauges.
//
// See the examples for how to use this package.
package gc9a01a

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/gc9a01a/image16bit"
)

// Panel geometry. The GC9A01A drives fixed 240x240 panels; there is no
// size or rotation option, and coordinates outside the panel are
// rejected, never clamped.
const (
	displayWidth  = 240
	displayHeight = 240
)

// Opts is the configuration for the GC9A01A display.
//
// Geometry and bus parameters are properties of the panel, not options:
// the display is always 240x240 RGB565 and the bus always runs MSB-first
// in Mode0 at 40MHz.
type Opts struct {
	// Backlight is the optional backlight control pin. When set, Setup
	// switches it on and the periodic diagnostic report samples its
	// level.
	Backlight gpio.PinIO
}

// Dev is the device handle for the GC9A01A display.
type Dev struct {
	// Communication
	c         spi.Conn    // SPI connection
	dc        gpio.PinOut // Data/Command pin
	rst       gpio.PinOut // Reset pin
	backlight gpio.PinIO  // Backlight pin (optional)

	// Display geometry
	rect image.Rectangle

	// Reusable pixel payload buffer, grown on demand up to one frame.
	burst []byte

	// State
	ready        bool
	halted       bool
	updateTick   uint32
	selfTestDone bool
}

// NewSPI creates a new GC9A01A device connected via SPI.
//
// The SPI port is configured for 40MHz, Mode0 (CPOL=0, CPHA=0), 8-bit
// MSB-first transfers. The dc (Data/Command) and rst (Reset) GPIO pins
// are both required; opts can be nil when no backlight pin is wired.
//
// The device starts uninitialized: call Setup once before drawing.
func NewSPI(p spi.Port, dc gpio.PinOut, rst gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}

	if dc == nil {
		return nil, errors.New("gc9a01a: DC pin is required")
	}
	if rst == nil {
		return nil, errors.New("gc9a01a: RST pin is required")
	}

	// Drive the required pins to their idle levels before touching the
	// bus, so a miswired setup fails here instead of mid-sequence.
	if err := dc.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("gc9a01a: failed to set up DC pin: %w", err)
	}
	if err := rst.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("gc9a01a: failed to set up RST pin: %w", err)
	}

	c, err := p.Connect(40*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	return &Dev{
		c:         c,
		dc:        dc,
		rst:       rst,
		backlight: opts.Backlight,
		rect:      image.Rect(0, 0, displayWidth, displayHeight),
	}, nil
}

// Setup resets the controller, replays the power-on script, switches the
// backlight on and paints the panel red as a visible liveness check.
//
// A successful Setup never re-runs; calling it again is a no-op. If Setup
// fails the device stays not ready, and a later call starts over from the
// hardware reset: a partially initialized controller has undefined
// behavior, so there is no mid-script retry.
func (d *Dev) Setup() error {
	if d.ready {
		return nil
	}

	log.Debug().Msg("initializing GC9A01A display")

	if err := d.reset(); err != nil {
		return err
	}

	if d.backlight != nil {
		if err := d.backlight.Out(gpio.High); err != nil {
			return fmt.Errorf("gc9a01a: failed to switch backlight on: %w", err)
		}
	}

	if err := d.initDisplay(); err != nil {
		return err
	}

	d.ready = true
	log.Debug().Msg("GC9A01A display initialization complete")

	// Full red fill so a working panel is visibly alive right after
	// setup. The controller is initialized at this point, so a bus
	// fault here is reported but does not fail Setup.
	if err := d.FillScreen(color.RGBA{R: 255, A: 255}); err != nil {
		log.Warn().Err(err).Msg("test fill failed")
	}

	return nil
}

// Ready reports whether Setup has completed successfully.
func (d *Dev) Ready() bool {
	return d.ready
}

// SetPixel draws a single pixel. Coordinates outside the panel are
// ignored, not clamped: the host drawing layer is the clipping authority.
// Calls before Setup completes are dropped without touching the bus.
func (d *Dev) SetPixel(x, y int, c color.Color) error {
	if d.halted {
		return errors.New("gc9a01a: halted")
	}
	if x < 0 || x >= displayWidth || y < 0 || y >= displayHeight {
		return nil
	}
	if !d.ready {
		log.Warn().Msg("display not ready for pixel draw")
		return nil
	}

	v := image16bit.RGB565Model.Convert(c).(image16bit.RGB565)
	if err := d.setAddrWindow(x, y, x, y); err != nil {
		return d.drawFault("SetPixel", err)
	}
	if err := d.writeData16(uint16(v)); err != nil {
		return d.drawFault("SetPixel", err)
	}
	return nil
}

// FillScreen fills the whole panel with a single color in one burst.
// Calls before Setup completes are dropped without touching the bus.
func (d *Dev) FillScreen(c color.Color) error {
	if d.halted {
		return errors.New("gc9a01a: halted")
	}
	if !d.ready {
		return nil
	}

	v := image16bit.RGB565Model.Convert(c).(image16bit.RGB565)
	log.Debug().Uint16("rgb565", uint16(v)).Msg("filling display")

	if err := d.setAddrWindow(0, 0, displayWidth-1, displayHeight-1); err != nil {
		return d.drawFault("FillScreen", err)
	}
	if err := d.writeColorBurst(v, displayWidth*displayHeight); err != nil {
		return d.drawFault("FillScreen", err)
	}
	return nil
}

// Draw updates the region r of the display from src, aligning r.Min in
// the display with sp in src. The update streams directly to the panel:
// one address window, one pixel burst. A full-frame *image16bit.BigEndian
// source is sent as-is without conversion.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("gc9a01a: halted")
	}
	if !d.ready {
		return nil
	}

	// Clip to the panel, keeping the source point aligned.
	orig := r.Min
	r = r.Intersect(d.rect)
	if r.Empty() {
		return nil
	}
	sp = sp.Add(r.Min.Sub(orig))

	// Fast path: a full frame already in wire format.
	if img, ok := src.(*image16bit.BigEndian); ok {
		zeroPoint := image.Point{}
		if r == d.rect && sp == zeroPoint && img.Rect == d.rect {
			if err := d.setAddrWindow(0, 0, displayWidth-1, displayHeight-1); err != nil {
				return d.drawFault("Draw", err)
			}
			if err := d.writeDataBulk(img.Pix); err != nil {
				return d.drawFault("Draw", err)
			}
			return nil
		}
	}

	// Conversion path: pack the region into wire order, row-major.
	n := r.Dx() * r.Dy() * 2
	if cap(d.burst) < n {
		d.burst = make([]byte, n)
	}
	buf := d.burst[:n]
	i := 0
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			v := image16bit.RGB565Model.Convert(src.At(sp.X+x, sp.Y+y)).(image16bit.RGB565)
			buf[i] = byte(v >> 8)
			buf[i+1] = byte(v)
			i += 2
		}
	}

	if err := d.setAddrWindow(r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1); err != nil {
		return d.drawFault("Draw", err)
	}
	if err := d.writeDataBulk(buf); err != nil {
		return d.drawFault("Draw", err)
	}
	return nil
}

// Write writes raw pixel data to the display in BigEndian wire format.
// The data must be exactly one full frame, 240*240*2 bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errors.New("gc9a01a: halted")
	}
	if !d.ready {
		return 0, errors.New("gc9a01a: not ready")
	}
	if len(pixels) != displayWidth*displayHeight*2 {
		return 0, errors.New("gc9a01a: invalid buffer size")
	}

	if err := d.setAddrWindow(0, 0, displayWidth-1, displayHeight-1); err != nil {
		return 0, d.drawFault("Write", err)
	}
	if err := d.writeDataBulk(pixels); err != nil {
		return 0, d.drawFault("Write", err)
	}
	return len(pixels), nil
}

// drawFault logs a bus fault during a drawing call and returns it. The
// failed call is abandoned; readiness stays intact and later calls
// proceed normally.
func (d *Dev) drawFault(name string, err error) error {
	log.Warn().Err(err).Str("op", name).Msg("bus fault, drawing call abandoned")
	return err
}

// setAddrWindow programs the rectangular write region, bounds inclusive.
// The controller fills the region row-major from the pixel burst that
// follows, so callers always pair this with a write.
func (d *Dev) setAddrWindow(x1, y1, x2, y2 int) error {
	if err := d.writeCommand(cmdCASET); err != nil {
		return err
	}
	if err := d.writeData16(uint16(x1)); err != nil {
		return err
	}
	if err := d.writeData16(uint16(x2)); err != nil {
		return err
	}

	if err := d.writeCommand(cmdRASET); err != nil {
		return err
	}
	if err := d.writeData16(uint16(y1)); err != nil {
		return err
	}
	if err := d.writeData16(uint16(y2)); err != nil {
		return err
	}

	return d.writeCommand(cmdRAMWR)
}

// The DC level must be stable before chip select asserts, so every
// exchange sets DC first and only then starts the transaction; Tx owns
// chip select for the duration of the transfer, paired on all paths.

// writeCommand sends a single command byte.
func (d *Dev) writeCommand(cmd byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	return d.c.Tx([]byte{cmd}, nil)
}

// writeData sends a single data byte.
func (d *Dev) writeData(b byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	return d.c.Tx([]byte{b}, nil)
}

// writeData16 sends a 16-bit data word, high byte first regardless of
// host byte order.
func (d *Dev) writeData16(v uint16) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	return d.c.Tx([]byte{byte(v >> 8), byte(v)}, nil)
}

// writeDataBulk sends a data payload in a single transaction.
func (d *Dev) writeDataBulk(data []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	return d.c.Tx(data, nil)
}

// writeColorBurst sends count repetitions of one pixel value in a single
// transaction. Re-acquiring the bus per pixel would break the
// controller's one-burst-per-window contract, besides being a severe
// slowdown.
func (d *Dev) writeColorBurst(c image16bit.RGB565, count int) error {
	n := count * 2
	if cap(d.burst) < n {
		d.burst = make([]byte, n)
	}
	buf := d.burst[:n]

	hi, lo := byte(c>>8), byte(c)
	for i := 0; i < n; i += 2 {
		buf[i] = hi
		buf[i+1] = lo
	}
	return d.writeDataBulk(buf)
}

// readDiagnostic sends a command and reads back n response bytes under a
// single chip-select bracket.
func (d *Dev) readDiagnostic(cmd byte, n int) ([]byte, error) {
	if err := d.dc.Out(gpio.Low); err != nil {
		return nil, err
	}

	buf := make([]byte, n)
	pkts := []spi.Packet{
		{W: []byte{cmd}, KeepCS: true},
		{R: buf},
	}
	if err := d.c.TxPackets(pkts); err != nil {
		return nil, err
	}
	return buf, nil
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image16bit.RGB565Model
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Halt blanks the display and switches the backlight off. After calling
// Halt, the device does not accept further drawing until re-created.
func (d *Dev) Halt() error {
	d.halted = true
	if d.backlight != nil {
		if err := d.backlight.Out(gpio.Low); err != nil {
			return fmt.Errorf("gc9a01a: failed to switch backlight off: %w", err)
		}
	}
	return d.writeCommand(cmdDISPOFF)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("gc9a01a.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

var _ display.Drawer = &Dev{}
var _ conn.Resource = &Dev{}
