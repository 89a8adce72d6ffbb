package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/automoto/dobok/assets"
	cfg "github.com/automoto/dobok/config"
	"github.com/automoto/dobok/level"
	"github.com/automoto/dobok/sim"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	tuningPath string
	levelsDir  string
	format     string
	every      int
)

var runCmd = &cobra.Command{
	Use:   "run <script.yaml>",
	Short: "Run an input script",
	Long:  `Run an input script on the stage it names and print the controller state frame by frame.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runScript,
}

func init() {
	runCmd.Flags().StringVar(&tuningPath, "tuning", "", "YAML tuning file overlaid on the defaults")
	runCmd.Flags().StringVar(&levelsDir, "levels", "", "Directory of .tmx stages (default: embedded stages)")
	runCmd.Flags().StringVar(&format, "format", "table", "Output format: table or yaml")
	runCmd.Flags().IntVar(&every, "every", 1, "Print every n-th frame (frames with hits are always printed)")
}

func runScript(cmd *cobra.Command, args []string) error {
	if tuningPath != "" {
		t, err := cfg.LoadTuning(tuningPath)
		if err != nil {
			return err
		}
		cfg.Apply(t)
	}

	script, err := sim.LoadScript(args[0])
	if err != nil {
		return err
	}

	var levels []*level.Level
	if levelsDir != "" {
		levels, err = level.LoadAll(os.DirFS(levelsDir), ".")
	} else {
		levels, err = assets.LoadLevels()
	}
	if err != nil {
		return err
	}

	res, err := sim.Run(levels, script)
	if err != nil {
		return fmt.Errorf("run %s: %w", script.Name, err)
	}

	out := cmd.OutOrStdout()
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(filterFrames(res)); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		return enc.Close()
	case "table":
		return writeTable(out, filterFrames(res))
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// filterFrames keeps every n-th frame, the last one, and any frame with hits.
func filterFrames(res *sim.Result) *sim.Result {
	if every <= 1 {
		return res
	}
	filtered := *res
	filtered.Frames = nil
	for i, f := range res.Frames {
		if f.Frame%every == 0 || len(f.Hits) > 0 || i == len(res.Frames)-1 {
			filtered.Frames = append(filtered.Frames, f)
		}
	}
	return &filtered
}

func writeTable(out io.Writer, res *sim.Result) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FRAME\tTIME\tSTAGE\tX\tY\tVX\tVY\tGND\tJUMPS\tGRAV\tFACE\tDASH\tROLL\tATTACK\tCOMBO\tWIN\tHP\tDOBOK\tHITS")
	for _, f := range res.Frames {
		hits := make([]string, 0, len(f.Hits))
		for _, h := range f.Hits {
			hits = append(hits, fmt.Sprintf("%s>%s(%d)", h.Phase, h.Target, h.Damage))
		}
		fmt.Fprintf(tw, "%d\t%.3f\t%d\t%.1f\t%.1f\t%.1f\t%.1f\t%t\t%d\t%.2f\t%s\t%t\t%t\t%s\t%d\t%t\t%d\t%s\t%s\n",
			f.Frame, f.Time, f.Stage, f.X, f.Y, f.VX, f.VY, f.Grounded, f.Charges, f.Gravity,
			f.Facing, f.Dashing, f.Rolling, f.Attack, f.ComboStage, f.Window, f.Health, f.Dobok, strings.Join(hits, " "))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, "\n%s: %d frames, %d hits, stage %d, %s\n",
		res.Script, len(res.Frames), res.TotalHits, res.FinalStage, res.FinalState)
	return err
}
