package cache

// TimelineKeyOpts are the inputs that invalidate a cached timeline.
type TimelineKeyOpts struct {
	// Version is the build version of the binary that registered the
	// scene. Scene builders are compiled in, so a new binary may produce
	// a different timeline for the same scene name.
	Version string
}

// ArtifactKeyOpts are the inputs that invalidate a cached render artifact.
type ArtifactKeyOpts struct {
	Quality string
	Format  string
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// TimelineKey generates a key for a built scene timeline.
	TimelineKey(scene string, opts TimelineKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact, derived from
	// the hash of the timeline it was rendered from.
	ArtifactKey(timelineHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes all key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// TimelineKey generates a key for a built scene timeline.
func (k *DefaultKeyer) TimelineKey(scene string, opts TimelineKeyOpts) string {
	return hashKey("timeline", scene, opts.Version)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(timelineHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", timelineHash, opts.Quality, opts.Format)
}

// ScopedKeyer wraps a Keyer with a prefix so separate projects sharing a
// cache backend (e.g. one Redis instance) get isolated namespaces.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// TimelineKey generates a prefixed timeline key.
func (k *ScopedKeyer) TimelineKey(scene string, opts TimelineKeyOpts) string {
	return k.prefix + k.inner.TimelineKey(scene, opts)
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(timelineHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(timelineHash, opts)
}
