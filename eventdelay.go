package deepnote

import "sort"

// EventDelay runs functions on a sample clock.  Step advances the clock by
// one sample and runs whatever has fallen due.
type EventDelay struct {
	Params Params

	now    int64
	events []delayEvent // sorted by due, then by insertion
}

type delayEvent struct {
	due int64
	f   func()
}

// Delay schedules f to run on the Step that is t seconds from now.  Events
// due on the same Step run in the order they were scheduled.
func (d *EventDelay) Delay(t float64, f func()) {
	if d.Params.SampleRate == 0 {
		panic("EventDelay.Delay called before InitAudio")
	}
	d.DelaySamples(int(t*float64(d.Params.SampleRate)), f)
}

// DelaySamples schedules f to run on the nth Step from now.
func (d *EventDelay) DelaySamples(n int, f func()) {
	due := d.now + int64(n)
	i := sort.Search(len(d.events), func(i int) bool { return d.events[i].due > due })
	d.events = append(d.events, delayEvent{})
	copy(d.events[i+1:], d.events[i:])
	d.events[i] = delayEvent{due, f}
}

// Pending reports how many events have yet to run.
func (d *EventDelay) Pending() int { return len(d.events) }

func (d *EventDelay) Step() {
	d.now++
	for len(d.events) > 0 && d.events[0].due <= d.now {
		f := d.events[0].f
		d.events = d.events[1:]
		f()
	}
}
