package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"ecosched/internal/sched"
)

func num(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

// renderOutcome prints the per-task table, the timeline and the summary.
func renderOutcome(w io.Writer, o *sched.Outcome) {
	title := o.Policy.String()
	if o.Policy.Preemptive() {
		title += fmt.Sprintf(" (quantum %g)", o.Quantum)
	}
	fmt.Fprintf(w, "== %s ==\n", title)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Priority", "Energy", "CPU", "Completion", "Turnaround", "Waiting"})
	for _, t := range o.Tasks {
		res := o.Results[t.ID]
		table.Append([]string{
			strconv.FormatInt(int64(t.ID), 10),
			num(t.ArrivalTime),
			num(t.ExecutionTime),
			num(t.Priority),
			num(t.EnergyIntensity),
			num(t.CPUDemand),
			num(res.CompletionTime),
			num(res.TurnaroundTime),
			num(res.WaitingTime),
		})
	}
	table.SetFooter([]string{"", "", "", "", "", "", "Average", num(o.Metrics.AvgTurnaround), num(o.Metrics.AvgWaiting)})
	table.Render()

	fmt.Fprintln(w, "Timeline")
	timeline := tablewriter.NewWriter(w)
	timeline.SetHeader([]string{"Task", "Start", "End", "Duration"})
	for _, seg := range mergeTimeline(o.Trace) {
		timeline.Append(seg)
	}
	timeline.Render()

	m := o.Metrics
	fmt.Fprintf(w, "Total energy:  %.4f Wh\n", m.TotalEnergy)
	fmt.Fprintf(w, "Makespan:      %s\n", num(m.Makespan))
	fmt.Fprintf(w, "Busy / idle:   %s / %s\n", num(m.BusyTime), num(m.IdleTime))
	fmt.Fprintf(w, "Utilization:   %.1f%%\n", m.Utilization*100)
	fmt.Fprintf(w, "Throughput:    %.3f tasks/unit\n", m.Throughput)
}

// mergeTimeline interleaves busy segments and idle gaps in time order.
func mergeTimeline(tr sched.Trace) [][]string {
	rows := make([][]string, 0, len(tr.Segments)+len(tr.Idle))
	i, j := 0, 0
	for i < len(tr.Segments) || j < len(tr.Idle) {
		if j < len(tr.Idle) && (i == len(tr.Segments) || tr.Idle[j].Start < tr.Segments[i].Start) {
			g := tr.Idle[j]
			rows = append(rows, []string{"idle", num(g.Start), num(g.End), num(g.Duration())})
			j++
			continue
		}
		s := tr.Segments[i]
		rows = append(rows, []string{"P" + strconv.FormatInt(int64(s.TaskID), 10), num(s.Start), num(s.End), num(s.Duration())})
		i++
	}
	return rows
}

// renderComparison prints one summary row per policy.
func renderComparison(w io.Writer, outs []*sched.Outcome) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Makespan", "Avg Turnaround", "Avg Waiting", "Utilization", "Energy (Wh)"})
	for _, o := range outs {
		m := o.Metrics
		table.Append([]string{
			o.Policy.String(),
			num(m.Makespan),
			num(m.AvgTurnaround),
			num(m.AvgWaiting),
			fmt.Sprintf("%.1f%%", m.Utilization*100),
			fmt.Sprintf("%.4f", m.TotalEnergy),
		})
	}
	table.Render()
}
