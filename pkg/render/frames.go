package render

import "github.com/sketchlab/sketchcast/pkg/anim"

// Keyframe is the snapshot at one step boundary of a timeline.
type Keyframe struct {
	Index    int           `json:"index"`
	Time     float64       `json:"time"`
	Step     anim.StepKind `json:"step,omitempty"`
	Label    string        `json:"label,omitempty"`
	Snapshot anim.Snapshot `json:"snapshot"`
}

// Keyframes returns one keyframe per step boundary: the initial state at
// time zero, then the end state of every step.
func Keyframes(tl anim.Timeline) []Keyframe {
	frames := make([]Keyframe, 0, len(tl.Steps)+1)
	frames = append(frames, Keyframe{Snapshot: tl.Initial})

	var t float64
	for i, step := range tl.Steps {
		t += step.Duration
		frames = append(frames, Keyframe{
			Index:    i + 1,
			Time:     t,
			Step:     step.Kind,
			Label:    step.Label,
			Snapshot: step.Snapshot,
		})
	}
	return frames
}

// Frames samples the timeline at the profile's frame rate. Each step
// contributes FrameCount(duration) frames interpolated from the previous
// boundary to its end state, preceded by a single frame of the initial
// state.
func Frames(tl anim.Timeline, q Quality) []anim.Snapshot {
	frames := []anim.Snapshot{tl.Initial}

	prev := tl.Initial
	for _, step := range tl.Steps {
		n := q.FrameCount(step.Duration)
		for i := 1; i <= n; i++ {
			t := float64(i) / float64(n)
			frames = append(frames, anim.Interpolate(prev, step.Snapshot, t))
		}
		prev = step.Snapshot
	}
	return frames
}
