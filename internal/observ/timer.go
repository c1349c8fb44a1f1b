package observ

import (
	"fmt"
	"time"
)

// Phase is a single timed stage of a run.
type Phase struct {
	Name string
	Dur  time.Duration
	Note string
}

// Timer accumulates named phases. It is not safe for concurrent use;
// each worker keeps its own timer and merges reports at the end.
type Timer struct {
	phases []Phase
	start  time.Time
	name   string
	note   string
}

func NewTimer() *Timer {
	return &Timer{}
}

// Start begins a new phase, finishing the previous one if still open.
func (t *Timer) Start(name string) {
	t.Stop()
	t.name = name
	t.note = ""
	t.start = time.Now()
}

// Note attaches a short annotation to the current phase.
func (t *Timer) Note(note string) {
	t.note = note
}

// Stop finishes the current phase, if any.
func (t *Timer) Stop() {
	if t.name == "" {
		return
	}
	t.phases = append(t.phases, Phase{
		Name: t.name,
		Dur:  time.Since(t.start),
		Note: t.note,
	})
	t.name = ""
	t.note = ""
}

// PhaseReport is the serializable form of a phase.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report aggregates all finished phases.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

func (t *Timer) Report() Report {
	t.Stop()
	if len(t.phases) == 0 {
		return Report{}
	}
	report := Report{
		Phases: make([]PhaseReport, len(t.phases)),
	}
	var total time.Duration
	for i, phase := range t.phases {
		total += phase.Dur
		report.Phases[i] = PhaseReport{
			Name:       phase.Name,
			DurationMS: durationToMillis(phase.Dur),
			Note:       phase.Note,
		}
	}
	report.TotalMS = durationToMillis(total)
	return report
}

// FormatReport renders a report as a fixed-width table for --timings output.
func FormatReport(report Report) string {
	if len(report.Phases) == 0 {
		return ""
	}
	out := "timings:\n"
	for _, phase := range report.Phases {
		label := phase.Name
		if phase.Note != "" {
			label += " (" + phase.Note + ")"
		}
		out += fmt.Sprintf("  %-20s %7.2f ms\n", label, phase.DurationMS)
	}
	out += fmt.Sprintf("  %-20s %7.2f ms\n", "total", report.TotalMS)
	return out
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
