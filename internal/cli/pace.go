package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	paceCmd.Flags().StringVarP(&paceDistance, "distance", "d", "", "Distance: 100m, 200m, 400m, 1.4k, 3k, 5k, 10k, half, full (default from config)")
	paceCmd.Flags().StringVarP(&paceTime, "time", "t", "", "Target time as H:MM:SS or M:SS")
	rootCmd.AddCommand(paceCmd)
}

var (
	paceDistance string
	paceTime     string
)

var paceCmd = &cobra.Command{
	Use:     "pace",
	Short:   "Calculate the pace needed for a target time",
	Example: `  runcalc pace --distance half --time 1:45:00`,
	Args:    cobra.NoArgs,
	RunE:    runPace,
}

func runPace(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	d, err := distanceOrDefault(paceDistance, s.cfg.Display.Distance)
	if err != nil {
		return err
	}
	h, m, sec, err := parseClock("time", paceTime)
	if err != nil {
		return err
	}

	data := s.calc.RequiredPace(h, m, sec, d)
	out := cmd.OutOrStdout()
	if !data.OK {
		fmt.Fprintln(out, "No result: enter a target time above 0:00.")
		return nil
	}

	fmt.Fprintf(out, "Distance:       %s\n", d.Label())
	fmt.Fprintf(out, "Target time:    %s\n", data.Time)
	fmt.Fprintf(out, "Required pace:  %s\n", data.Pace)
	return nil
}
