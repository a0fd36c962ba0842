// Package luxafor provides a Go driver for Luxafor Flag USB HID indicator
// lights: color, fade, flash and wave commands with ordered, acknowledged
// delivery.
//
// # Overview
//
// The flag is a small RGB status light with six LEDs split across a front
// (flag-shaped) and a back face. This library opens the device over raw
// USB HID, encodes commands into the flag's report format and serializes
// them through a FIFO queue so that at most one command is in flight at
// any time.
//
// # Protocol Architecture
//
// The flag speaks a tiny fixed-size report protocol:
//
//   - Outbound frames are 7 or 8 bytes: [opcode][target/pattern][R][G][B][...]
//   - Color (0x01) is acknowledged with ACK [0x42 0x00] on receipt
//   - Fade (0x02), Flash (0x03) and Wave (0x04) report DONE [0x00 0x01]
//     only after the animation completes
//   - Any other inbound report is rejected and ignored by the queue
//
// Because the device has no notion of command overlap, the queue holds
// back the next command until the current one is acknowledged.
//
// # Quick Start
//
//	dev := luxafor.NewDevice()
//	if err := dev.Connect(); err != nil {
//	    log.Fatal(err)
//	}
//	defer dev.Close()
//
//	<-dev.Color("#00ff00")
//	<-dev.Fade("#ff0000", luxafor.WithDuration(30))
//	<-dev.Wave("#00ffff", luxafor.WaveThree, luxafor.WithTimes(2))
//	<-dev.Off()
//
// # Supported Features
//
//   - Static color, fade, flash and wave commands on any LED group
//   - CSS-style hex color parsing ("#rgb", "#rrggbb", case-insensitive)
//   - Per-call options and persistent, queue-ordered defaults (Configure)
//   - Brightness scaling applied at execution time
//   - FIFO command queue with at-most-one in-flight command
//   - Queue clearing without interrupting the in-flight command
//   - Device enumeration and pluggable transports for testing
//
// # Thread Safety
//
// The Device struct is thread-safe. Commands may be issued from multiple
// goroutines; they are executed strictly in arrival order.
package luxafor
