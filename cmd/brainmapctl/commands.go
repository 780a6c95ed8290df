package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yungbote/neurohealing-backend/internal/modules/brainmap"
	"github.com/yungbote/neurohealing-backend/internal/modules/healing"
	"github.com/yungbote/neurohealing-backend/internal/platform/chart"
)

func newRootCmd() *cobra.Command {
	var format string
	root := &cobra.Command{
		Use:   "brainmapctl",
		Short: "Score trauma questionnaires and aggregate healing histories offline",
		Long: `brainmapctl runs the scoring and healing engines against local files.

Examples:
  brainmapctl score answers.yaml --sex female
  brainmapctl aggregate history.yaml --factors therapy,sleep
  brainmapctl chart answers.json -o impact.png
  brainmapctl catalog --format yaml`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&format, "format", "json", "output format: json or yaml")

	root.AddCommand(
		newScoreCmd(&format),
		newAggregateCmd(&format),
		newTimelineCmd(&format),
		newChartCmd(),
		newCatalogCmd(&format),
	)
	return root
}

func newScoreCmd(format *string) *cobra.Command {
	var (
		sex       string
		recommend bool
	)
	cmd := &cobra.Command{
		Use:   "score <answers-file>",
		Short: "Score a questionnaire into per-region impacts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, err := readAnswers(args[0])
			if err != nil {
				return err
			}
			res := brainmap.ScoreImpacts(answers, brainmap.ParseSex(sex))
			if !recommend {
				return writeOutput(cmd.OutOrStdout(), *format, res)
			}
			return writeOutput(cmd.OutOrStdout(), *format, struct {
				brainmap.Result
				Recommendations []brainmap.Recommendation `json:"recommendations"`
			}{res, brainmap.Recommend(res)})
		},
	}
	cmd.Flags().StringVar(&sex, "sex", "", "biological sex: male or female")
	cmd.Flags().BoolVar(&recommend, "recommend", false, "include per-region recommendations")
	return cmd
}

func newAggregateCmd(format *string) *cobra.Command {
	var factors string
	cmd := &cobra.Command{
		Use:   "aggregate <snapshots-file>",
		Short: "Aggregate a snapshot history into healing metrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snaps, err := readSnapshots(args[0])
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), *format, healing.Aggregate(snaps, healing.ParseFactors(factors)))
		},
	}
	cmd.Flags().StringVar(&factors, "factors", "", "comma separated active healing factors")
	return cmd
}

func newTimelineCmd(format *string) *cobra.Command {
	return &cobra.Command{
		Use:   "timeline <snapshots-file>",
		Short: "Build per-region and per-subscale timelines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snaps, err := readSnapshots(args[0])
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), *format, healing.BuildTimeline(snaps))
		},
	}
}

func newChartCmd() *cobra.Command {
	var (
		sex string
		out string
	)
	cmd := &cobra.Command{
		Use:   "chart <answers-file>",
		Short: "Render the regional impact bar chart as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, err := readAnswers(args[0])
			if err != nil {
				return err
			}
			res := brainmap.ScoreImpacts(answers, brainmap.ParseSex(sex))
			bars := make([]chart.Bar, 0, len(res.Impacts))
			for _, ri := range res.Impacts {
				bars = append(bars, chart.Bar{Label: ri.Region, Value: ri.Impact, Level: ri.Level})
			}
			sort.Slice(bars, func(i, j int) bool {
				if bars[i].Value != bars[j].Value {
					return bars[i].Value > bars[j].Value
				}
				return bars[i].Label < bars[j].Label
			})
			raw, err := chart.RenderImpactBars("Regional impact", bars)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, raw, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d regions)\n", out, len(bars))
			return nil
		},
	}
	cmd.Flags().StringVar(&sex, "sex", "", "biological sex: male or female")
	cmd.Flags().StringVarP(&out, "output", "o", "impact.png", "output PNG path")
	return cmd
}

func newCatalogCmd(format *string) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List trauma categories, windows, durations and regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOutput(cmd.OutOrStdout(), *format, brainmap.DefaultTables().Catalog())
		},
	}
}

// writeOutput prints v as indented JSON, or as YAML built from the JSON form
// so both formats share field names.
func writeOutput(w io.Writer, format string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	switch format {
	case "json", "":
		_, err = fmt.Fprintln(w, string(raw))
		return err
	case "yaml", "yml":
		var generic any
		if err := json.Unmarshal(raw, &generic); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
