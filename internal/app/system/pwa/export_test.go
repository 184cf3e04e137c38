package pwa

import "time"

// SetNow replaces the tracker clock.
func (t *Tracker) SetNow(now func() time.Time) { t.now = now }
