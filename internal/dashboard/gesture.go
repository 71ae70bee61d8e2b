package dashboard

// DefaultPullThreshold is the downward travel, in rows, that counts as a pull.
const DefaultPullThreshold = 3

// PullTracker detects a downward drag that starts while the scroll region
// is at its top.
type PullTracker struct {
	Threshold int

	startY int
	active bool
}

// NewPullTracker returns a tracker with the default threshold.
func NewPullTracker() *PullTracker {
	return &PullTracker{Threshold: DefaultPullThreshold}
}

// Start records the pointer's starting row.
func (p *PullTracker) Start(y int) {
	p.startY = y
	p.active = true
}

// End forgets the current drag.
func (p *PullTracker) End() { p.active = false }

// Move reports a pull when the pointer has moved down more than Threshold
// rows since Start and the region is at its top. A reported pull ends the
// drag so it fires once.
func (p *PullTracker) Move(y int, atTop bool) bool {
	if !p.active || !atTop {
		return false
	}
	if y-p.startY > p.Threshold {
		p.active = false
		return true
	}
	return false
}
