// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cursor

import (
	"time"

	"github.com/gogpu/gridview"
)

// blinkPhase is a state of the blink cycle.
type blinkPhase uint8

const (
	// blinkWaiting shows the cursor until BlinkWait has passed.
	blinkWaiting blinkPhase = iota
	blinkOff
	blinkOn
)

// blinker tracks the blink cycle of one cursor.
type blinker struct {
	phase   blinkPhase
	elapsed time.Duration
}

// reset restarts the cycle with the cursor shown.
func (b *blinker) reset() {
	b.phase = blinkWaiting
	b.elapsed = 0
}

// advance moves the cycle forward by dt and reports whether the cursor is
// shown. A cursor with any zero duration does not blink.
func (b *blinker) advance(c gridview.Cursor, dt time.Duration) bool {
	if c.BlinkWait <= 0 || c.BlinkOn <= 0 || c.BlinkOff <= 0 {
		b.reset()
		return true
	}

	b.elapsed += dt
	for {
		limit := b.limit(c)
		if b.elapsed < limit {
			break
		}
		b.elapsed -= limit
		switch b.phase {
		case blinkWaiting, blinkOn:
			b.phase = blinkOff
		case blinkOff:
			b.phase = blinkOn
		}
	}
	return b.phase != blinkOff
}

func (b *blinker) limit(c gridview.Cursor) time.Duration {
	switch b.phase {
	case blinkWaiting:
		return c.BlinkWait
	case blinkOn:
		return c.BlinkOn
	default:
		return c.BlinkOff
	}
}
