package gc9a01a

import (
	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/gpio"
)

// Diagnostics cadence, in update ticks.
const (
	selfTestTick   = 20 // the one-shot bus self-test fires on this tick
	reportInterval = 20 // status report period
)

// Update drives the driver's diagnostics and should be called by the
// host scheduler on a fixed period. Update never draws; pushing pixels
// is the host's job through SetPixel, FillScreen and Draw.
//
// Once the device is ready, a tick counter advances on every call. On
// tick 20 a one-shot bus self-test fires; every 20th tick a status
// report is logged. Neither affects readiness.
func (d *Dev) Update() {
	if !d.ready {
		log.Warn().Msg("display not ready, skipping update")
		return
	}

	d.updateTick++

	if !d.selfTestDone {
		if d.updateTick == selfTestTick {
			d.selfTest()
		} else if d.updateTick < selfTestTick {
			log.Info().Uint32("remaining", selfTestTick-d.updateTick).Msg("updates until bus self-test")
		}
	}

	if d.updateTick%reportInterval == 0 {
		d.reportStatus()
	}
}

// selfTest brackets one diagnostic read on the bus, purely for
// observability. The response is logged, never interpreted, and a fault
// is logged too; either way the test counts as done and never re-fires.
func (d *Dev) selfTest() {
	d.selfTestDone = true

	log.Debug().Msg("starting bus self-test")
	resp, err := d.readDiagnostic(cmdRDID, 3)
	if err != nil {
		log.Warn().Err(err).Msg("bus self-test read failed")
		return
	}
	log.Debug().Hex("response", resp).Msg("bus self-test complete")
}

// reportStatus logs the periodic status report. It samples pin state but
// changes nothing.
func (d *Dev) reportStatus() {
	e := log.Info().
		Uint32("update", d.updateTick).
		Bool("ready", d.ready).
		Int("width", d.rect.Dx()).
		Int("height", d.rect.Dy())

	if d.backlight == nil {
		e.Bool("backlight_configured", false).Msg("diagnostic report")
		log.Warn().Msg("no backlight control available, display may be dark")
		return
	}

	level := d.backlight.Read()
	e.Bool("backlight_configured", true).Stringer("backlight_level", level).Msg("diagnostic report")
	if level == gpio.Low {
		log.Warn().Str("pin", d.backlight.Name()).Msg("backlight pin is low, display may be dark")
	}
}

// DumpConfig logs the device configuration: pin assignment and geometry.
func (d *Dev) DumpConfig() {
	e := log.Info().
		Str("dc", d.dc.Name()).
		Str("rst", d.rst.Name()).
		Int("width", d.rect.Dx()).
		Int("height", d.rect.Dy())
	if d.backlight != nil {
		e = e.Str("backlight", d.backlight.Name())
	}
	e.Msg("GC9A01A display configuration")
}
