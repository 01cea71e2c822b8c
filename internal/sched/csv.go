package sched

import (
	"encoding/csv"
	"io"
	"strconv"
)

func formatTime(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }

// WriteEventsCSV writes one row per event, header first.
func WriteEventsCSV(w io.Writer, events []StatusEvent) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "event", "task_id", "ran", "remaining"}); err != nil {
		return err
	}

	for _, ev := range events {
		id := ""
		if ev.Kind != StatusIdle {
			id = strconv.FormatInt(int64(ev.TaskID), 10)
		}
		rec := []string{
			formatTime(ev.Time),
			ev.Kind.String(),
			id,
			formatTime(ev.Ran),
			formatTime(ev.Remaining),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTraceCSV writes busy segments followed by idle gaps.
func WriteTraceCSV(w io.Writer, tr Trace) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"kind", "task_id", "start", "end", "duration"}); err != nil {
		return err
	}

	for _, s := range tr.Segments {
		rec := []string{"busy", strconv.FormatInt(int64(s.TaskID), 10), formatTime(s.Start), formatTime(s.End), formatTime(s.Duration())}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	for _, g := range tr.Idle {
		rec := []string{"idle", "", formatTime(g.Start), formatTime(g.End), formatTime(g.Duration())}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
