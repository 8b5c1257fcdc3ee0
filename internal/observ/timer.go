// Package observ carries the timing surface behind the --timings flag.
package observ

import (
	"fmt"
	"strings"
	"time"
)

// Phase names used by the check pipeline.
const (
	PhaseDecode = "decode"
	PhaseCheck  = "check"
	PhaseReport = "report"
)

// Timer tracks the duration of the named phases of one lint run.
type Timer struct {
	phases []phase
}

type phase struct {
	name  string
	start time.Time
	dur   time.Duration
	note  string
}

func NewTimer() *Timer { return &Timer{phases: make([]phase, 0, 4)} }

// Track starts a phase and returns the function that ends it. The note
// typically carries a count ("3 declarations").
func (t *Timer) Track(name string) func(note string) {
	t.phases = append(t.phases, phase{name: name, start: time.Now()})
	idx := len(t.phases) - 1
	return func(note string) {
		p := &t.phases[idx]
		p.dur = time.Since(p.start)
		p.note = note
	}
}

// Summary returns the human-readable timing block printed by --timings.
func (t *Timer) Summary() string {
	return t.Report().Summary()
}

// PhaseTiming is the serialized form of one phase.
type PhaseTiming struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report aggregates the timer's phases in milliseconds.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseTiming `json:"phases"`
}

// Summary renders the report as the timing block printed by --timings.
func (r Report) Summary() string {
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, p := range r.Phases {
		fmt.Fprintf(&b, "  %-12s %7.2f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			b.WriteString("  // " + p.Note)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "  %-12s %7.2f ms\n", "total", r.TotalMS)
	return b.String()
}

func (t *Timer) Report() Report {
	if len(t.phases) == 0 {
		return Report{}
	}
	r := Report{Phases: make([]PhaseTiming, len(t.phases))}
	var total time.Duration
	for i, p := range t.phases {
		total += p.dur
		r.Phases[i] = PhaseTiming{
			Name:       p.name,
			DurationMS: float64(p.dur) / float64(time.Millisecond),
			Note:       p.note,
		}
	}
	r.TotalMS = float64(total) / float64(time.Millisecond)
	return r
}
