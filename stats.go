// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package siw

import (
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// Stats stores status information about a run. We use a stack (slice) of
// objects to record the sequence of episodes (calls to IW) during the run.
type Stats struct {
	Expanded  int           // Total number of expanded nodes
	Generated int           // Total number of generated nodes
	Pruned    int           // Total number of nodes pruned because they were not novel
	Eras      int           // Number of calls to IW, including failed ones
	Episodes  int           // Number of solved episodes (segments in the plan)
	MaxWidth  int           // Largest width recorded on a segment
	SumWidth  int           // Sum of the widths recorded on segments
	Elapsed   time.Duration // Duration of the run
	History   []EraStat     // Snapshot of the stats of each call to IW
}

// EraStat is a snapshot of the stats of a single call to IW.
type EraStat struct {
	Root      uint64 // Hash of the root state
	Bound     int    // Bound of the search
	Expanded  int    // Number of expanded nodes
	Generated int    // Number of generated nodes
	Pruned    int    // Number of pruned nodes
	Solved    bool   // Whether a subgoal was found
	Length    int    // Number of actions to the subgoal, if any
}

// AvgWidth returns the average width of the segments, or 0 if there are none.
func (s Stats) AvgWidth() float64 {
	if s.Episodes == 0 {
		return 0
	}
	return float64(s.SumWidth) / float64(s.Episodes)
}

func (s *Stats) record(e EraStat) {
	s.Eras++
	s.Expanded += e.Expanded
	s.Generated += e.Generated
	s.Pruned += e.Pruned
	s.History = append(s.History, e)
}

func (s *Stats) segment(width int) {
	s.Episodes++
	s.SumWidth += width
	s.MaxWidth = max(s.MaxWidth, width)
}

func (s Stats) String() string {
	res := fmt.Sprintf("Expanded:     %d\n", s.Expanded)
	res += fmt.Sprintf("Generated:    %d\n", s.Generated)
	res += fmt.Sprintf("Pruned:       %d\n", s.Pruned)
	res += fmt.Sprintf("Episodes:     %d (%d calls to IW)\n", s.Episodes, s.Eras)
	res += fmt.Sprintf("Max width:    %d\n", s.MaxWidth)
	res += fmt.Sprintf("Avg width:    %.2f\n", s.AvgWidth())
	if s.Elapsed > 0 {
		res += fmt.Sprintf("Time:         %s\n", s.Elapsed)
	}
	return res
}

// ************************************************************

// observer forwards search events to a Sink, sampling the generation rate at
// most once per second.
type observer struct {
	sink      Sink
	start     time.Time
	generated int
	sometimes rate.Sometimes
}

func newobserver(s Sink) *observer {
	return &observer{sink: s, start: time.Now(), sometimes: rate.Sometimes{Interval: time.Second}}
}

func (o *observer) expanded(g int) {
	if o.sink != nil {
		o.sink.Expanded(g)
	}
}

func (o *observer) generatedat(g int) {
	o.generated++
	if o.sink == nil {
		return
	}
	o.sink.Generated(g)
	o.sometimes.Do(func() {
		if secs := time.Since(o.start).Seconds(); secs > 0 {
			o.sink.Rate(o.generated, float64(o.generated)/secs)
		}
	})
}
