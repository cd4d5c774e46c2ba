package cookie

import "time"

// SetNow pins the clock used to compute expiry dates.
func (m *Manager) SetNow(now func() time.Time) {
	m.now = now
}
