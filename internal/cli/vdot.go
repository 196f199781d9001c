package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"runcalc/internal/service"
)

func init() {
	vdotCmd.Flags().StringVarP(&vdotDistance, "distance", "d", "", "Race distance: 5k, 10k, half, full (default from config)")
	vdotCmd.Flags().StringVarP(&vdotTime, "time", "t", "", "Finish time as H:MM:SS or M:SS")
	vdotCmd.Flags().StringVar(&vdotSolver, "solver", string(service.SolverRelax), "Inverse solver: relax or bisect")
	vdotCmd.Flags().BoolVar(&vdotTrace, "trace", false, "Print solver iterations for each projection")
	rootCmd.AddCommand(vdotCmd)
}

var (
	vdotDistance string
	vdotTime     string
	vdotSolver   string
	vdotTrace    bool
)

var vdotCmd = &cobra.Command{
	Use:   "vdot",
	Short: "Score a race result and project equivalent times",
	Example: `  runcalc vdot --distance 5k --time 20:00
  runcalc vdot -d half -t 1:30:00 --trace`,
	Args: cobra.NoArgs,
	RunE: runVDOT,
}

func runVDOT(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	d, err := distanceOrDefault(vdotDistance, s.cfg.Display.VDOTDistance)
	if err != nil {
		return err
	}
	if !d.IsVDOTDistance() {
		return fmt.Errorf("--distance must be one of 5k, 10k, half, full, got %q", d)
	}
	h, m, sec, err := parseClock("time", vdotTime)
	if err != nil {
		return err
	}

	calc := s.calc
	switch service.Solver(vdotSolver) {
	case service.SolverRelax:
	case service.SolverBisect:
		calc = calc.WithSolver(service.SolverBisect)
	default:
		return fmt.Errorf("--solver must be %q or %q, got %q", service.SolverRelax, service.SolverBisect, vdotSolver)
	}

	data := calc.VDOTProjection(h, m, sec, d)
	out := cmd.OutOrStdout()
	if !data.OK {
		fmt.Fprintln(out, "No result: enter a finish time above 0:00.")
		return nil
	}

	fmt.Fprintf(out, "Race:   %s in %s\n", d.Label(), data.Time)
	fmt.Fprintf(out, "VDOT:   %.1f (%s)\n", data.Score, data.Label)
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DISTANCE\tTIME\tPACE")
	for _, p := range data.Projections {
		note := ""
		if !p.Converged {
			note = "\t(not converged)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s%s\n", p.Distance.Label(), p.Time, p.Pace, note)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if vdotTrace {
		return printTrace(out, data)
	}
	return nil
}

func printTrace(out io.Writer, data service.VDOTData) error {
	if data.Solver == service.SolverBisect {
		fmt.Fprintln(out, "\nNo trace: the bisection solver does not record iterations.")
		return nil
	}

	for _, p := range data.Projections {
		iters := p.Solution.Iterations
		fmt.Fprintf(out, "\n%s: %d iterations, converged=%v\n", p.Distance.Label(), len(iters), p.Converged)

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "STEP\tTIME\tVDOT\tERROR")
		for i, it := range iters {
			fmt.Fprintf(w, "%d\t%.2f\t%.4f\t%+.4f\n", i+1, it.Seconds, it.Predicted, it.Error)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if len(iters) > 1 {
			fmt.Fprintln(out, asciigraph.Plot(p.Solution.Errors(),
				asciigraph.Height(6),
				asciigraph.Width(40),
				asciigraph.Precision(2),
				asciigraph.Caption("|error| per step"),
			))
		}
	}
	return nil
}
