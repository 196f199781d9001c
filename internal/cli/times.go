package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	timesCmd.Flags().StringVarP(&timesPace, "pace", "p", "", "Pace per km as M:SS")
	timesCmd.Flags().IntVarP(&timesCadence, "cadence", "c", 0, "Cadence in steps per minute (default from config)")
	rootCmd.AddCommand(timesCmd)
}

var (
	timesPace    string
	timesCadence int
)

var timesCmd = &cobra.Command{
	Use:   "times",
	Short: "Project finish times for every distance from a pace",
	Example: `  runcalc times --pace 5:00
  runcalc times -p 4:30 -c 185`,
	Args: cobra.NoArgs,
	RunE: runTimes,
}

func runTimes(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	hours, mins, secs, err := parseClock("pace", timesPace)
	if err != nil {
		return err
	}
	mins += hours * 60
	cadence := timesCadence
	if cadence == 0 {
		cadence = s.cfg.Display.Cadence
	}

	data := s.calc.RaceTimes(mins, secs, cadence)
	out := cmd.OutOrStdout()
	if !data.OK {
		fmt.Fprintln(out, "No result: enter a pace above 0:00 per km.")
		return nil
	}

	fmt.Fprintf(out, "Pace:     %s\n", data.Pace)
	fmt.Fprintf(out, "Cadence:  %d spm\n", data.Cadence)
	if data.HasStride {
		fmt.Fprintf(out, "Stride:   %s\n", data.StrideString)
	}
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DISTANCE\tTIME")
	for _, row := range data.Times {
		fmt.Fprintf(w, "%s\t%s\n", row.Distance.Label(), row.Time)
	}
	return w.Flush()
}
