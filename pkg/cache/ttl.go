package cache

import "time"

// TTLs per pipeline stage. Timelines are cheap to rebuild, artifacts are
// not, so artifacts live longer.
const (
	TTLTimeline = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)
