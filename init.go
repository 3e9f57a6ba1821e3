package gc9a01a

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// GC9A01A command set.
const (
	cmdSWRESET byte = 0x01 // Software Reset
	cmdSLPOUT  byte = 0x11 // Sleep Out
	cmdNORON   byte = 0x13 // Normal Display Mode On
	cmdINVOFF  byte = 0x20 // Display Inversion Off
	cmdINVON   byte = 0x21 // Display Inversion On
	cmdDISPOFF byte = 0x28 // Display Off
	cmdDISPON  byte = 0x29 // Display On
	cmdCASET   byte = 0x2A // Column Address Set
	cmdRASET   byte = 0x2B // Row Address Set
	cmdRAMWR   byte = 0x2C // Memory Write
	cmdMADCTL  byte = 0x36 // Memory Access Control
	cmdCOLMOD  byte = 0x3A // Pixel Format Set
	cmdRDID    byte = 0x9F // Read ID, used by the bus self-test
)

// Memory Access Control bits.
const (
	madctlMY  byte = 0x80 // Row address order
	madctlMX  byte = 0x40 // Column address order
	madctlMV  byte = 0x20 // Row/column exchange
	madctlML  byte = 0x10 // Vertical refresh order
	madctlBGR byte = 0x08 // BGR channel order
	madctlMH  byte = 0x04 // Horizontal refresh order
)

// Hardware reset timing. The controller needs 120ms after the reset pin
// releases before it accepts commands; the settle leaves headroom.
const (
	resetHold   = 100 * time.Millisecond
	resetSettle = 150 * time.Millisecond
)

// initStep is one step of the power-on script: a command, its parameter
// bytes, and the settle delay the controller needs before the next step.
type initStep struct {
	cmd   byte
	data  []byte
	delay time.Duration
}

// initSequence is the full power-on script. Order and content are
// load-bearing: later steps depend on controller state set by earlier
// ones, so the table is replayed verbatim, never edited or reordered.
var initSequence = []initStep{
	// Software reset, then wake from sleep. Both need a long settle
	// before the controller accepts the next command.
	{cmd: cmdSWRESET, delay: 120 * time.Millisecond},
	{cmd: cmdSLPOUT, delay: 120 * time.Millisecond},

	// 16 bits per pixel (RGB565).
	{cmd: cmdCOLMOD, data: []byte{0x55}},

	// Scan direction and channel order. The panel wants BGR.
	{cmd: cmdMADCTL, data: []byte{madctlBGR}},

	// Vendor calibration block. Magic values from the manufacturer's
	// reference sequence with no public rationale; must stay bit-exact.
	{cmd: 0xEF},
	{cmd: 0xEB, data: []byte{0x14}},
	{cmd: 0xFE},
	{cmd: 0xEF},
	{cmd: 0xEB, data: []byte{0x14}},
	{cmd: 0x84, data: []byte{0x40}},
	{cmd: 0x85, data: []byte{0xFF}},
	{cmd: 0x86, data: []byte{0xFF}},
	{cmd: 0x87, data: []byte{0xFF}},
	{cmd: 0x88, data: []byte{0x0A}},
	{cmd: 0x89, data: []byte{0x21}},
	{cmd: 0x8A, data: []byte{0x00}},
	{cmd: 0x8B, data: []byte{0x80}},
	{cmd: 0x8C, data: []byte{0x01}},
	{cmd: 0x8D, data: []byte{0x01}},
	{cmd: 0x8E, data: []byte{0xFF}},
	{cmd: 0x8F, data: []byte{0xFF}},
	{cmd: 0xB6, data: []byte{0x00, 0x20}},
	{cmd: 0x36, data: []byte{0x08}},
	{cmd: 0x3A, data: []byte{0x05}},
	{cmd: 0x90, data: []byte{0x08, 0x08, 0x08, 0x08}},
	{cmd: 0xBD, data: []byte{0x06}},
	{cmd: 0xBC, data: []byte{0x00}},
	{cmd: 0xFF, data: []byte{0x60, 0x01, 0x04}},
	{cmd: 0xC3, data: []byte{0x13}},
	{cmd: 0xC4, data: []byte{0x13}},
	{cmd: 0xC9, data: []byte{0x22}},
	{cmd: 0xBE, data: []byte{0x11}},
	{cmd: 0xE1, data: []byte{0x10, 0x0E}},
	{cmd: 0xDF, data: []byte{0x21, 0x0C, 0x02}},
	{cmd: 0xF0, data: []byte{0x45, 0x09, 0x08, 0x08, 0x26, 0x2A}},
	{cmd: 0xF1, data: []byte{0x43, 0x70, 0x72, 0x36, 0x37, 0x6F}},
	{cmd: 0xF2, data: []byte{0x45, 0x09, 0x08, 0x08, 0x26, 0x2A}},
	{cmd: 0xF3, data: []byte{0x43, 0x70, 0x72, 0x36, 0x37, 0x6F}},
	{cmd: 0xED, data: []byte{0x1B, 0x0B}},
	{cmd: 0xAE, data: []byte{0x77}},
	{cmd: 0xCD, data: []byte{0x63}},
	{cmd: 0x70, data: []byte{0x07, 0x07, 0x04, 0x0E, 0x0F, 0x09, 0x07, 0x08, 0x03}},
	{cmd: 0xE8, data: []byte{0x34}},
	{cmd: 0x62, data: []byte{0x18, 0x0D, 0x71, 0xED, 0x70, 0x70, 0x18, 0x0F, 0x71, 0xEF, 0x70, 0x70}},
	{cmd: 0x63, data: []byte{0x18, 0x11, 0x71, 0xF1, 0x70, 0x70, 0x18, 0x13, 0x71, 0xF3, 0x70, 0x70}},
	{cmd: 0x64, data: []byte{0x28, 0x29, 0xF1, 0x01, 0xF1, 0x00, 0x07}},
	{cmd: 0x66, data: []byte{0x3C, 0x00, 0xCD, 0x67, 0x45, 0x45, 0x10, 0x00, 0x00, 0x00}},
	{cmd: 0x67, data: []byte{0x00, 0x3C, 0x00, 0x00, 0x00, 0x01, 0x54, 0x10, 0x32, 0x98}},
	{cmd: 0x74, data: []byte{0x10, 0x85, 0x80, 0x00, 0x00, 0x4E, 0x00}},
	{cmd: 0x98, data: []byte{0x3E, 0x07}},

	// Inversion on, normal mode, display on. The panel shows garbage
	// until DISPON has settled.
	{cmd: cmdINVON, delay: 10 * time.Millisecond},
	{cmd: cmdNORON, delay: 10 * time.Millisecond},
	{cmd: cmdDISPON, delay: 120 * time.Millisecond},
}

// reset performs the hardware reset: assert the reset pin, hold, release,
// then give the controller time to come back before the first command.
func (d *Dev) reset() error {
	if err := d.rst.Out(gpio.Low); err != nil {
		return fmt.Errorf("gc9a01a: failed to pull RST low: %w", err)
	}
	time.Sleep(resetHold)

	if err := d.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("gc9a01a: failed to pull RST high: %w", err)
	}
	time.Sleep(resetSettle)

	return nil
}

// initDisplay replays the power-on script. Every parameter byte goes out
// in its own data transaction, matching the reference byte stream.
func (d *Dev) initDisplay() error {
	for _, step := range initSequence {
		if err := d.writeCommand(step.cmd); err != nil {
			return fmt.Errorf("gc9a01a: init command 0x%02X: %w", step.cmd, err)
		}
		for _, b := range step.data {
			if err := d.writeData(b); err != nil {
				return fmt.Errorf("gc9a01a: init data for command 0x%02X: %w", step.cmd, err)
			}
		}
		if step.delay != 0 {
			time.Sleep(step.delay)
		}
	}
	return nil
}
