package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/darkstore/rackplan/pkg/plan"
	"github.com/darkstore/rackplan/pkg/scoring"
)

// newScoreCmd creates the score command, which re-scores a saved solution
// document and prints the full breakdown.
func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <solution.json>",
		Short: "Re-score a saved solution and print the breakdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := plan.ReadDocumentFile(args[0])
			if err != nil {
				return err
			}
			layout, err := doc.ToLayout()
			if err != nil {
				return err
			}
			placements, err := doc.Placements()
			if err != nil {
				return err
			}

			sol := scoring.NewEngine().Score(placements, layout)

			fmt.Println(StyleTitle.Render("Score breakdown"))
			printNewline()
			printKeyValue("Composite", fmt.Sprintf("%.1f/100", sol.Score))
			printKeyValue("Efficiency", fmt.Sprintf("%.1f%%", sol.LayoutEfficiency*100))
			printKeyValue("Accessibility", fmt.Sprintf("%.1f%%", sol.Accessibility*100))
			printKeyValue("Workflow", fmt.Sprintf("%.1f%%", sol.Workflow*100))
			printKeyValue("Density", fmt.Sprintf("%.2f", sol.Metrics.Density))
			printKeyValue("Aisle", fmt.Sprintf("%.1f%%", sol.Metrics.AisleEfficiency*100))
			printNewline()
			printKeyValue("Racks", fmt.Sprintf("%d", sol.Metrics.TotalRacks))
			printKeyValue("Capacity", fmt.Sprintf("%d units", sol.Metrics.TotalCapacity))
			printKeyValue("To entrance", fmt.Sprintf("%.2fm avg", sol.Metrics.AvgDistanceToEntrance))
			printKeyValue("To dock", fmt.Sprintf("%.2fm avg", sol.Metrics.AvgDistanceToDock))

			if stored := doc.Solution.Score; stored != 0 && fmt.Sprintf("%.4f", stored) != fmt.Sprintf("%.4f", sol.Score) {
				printNewline()
				printWarning("Stored score %.1f differs from recomputed %.1f", stored, sol.Score)
			}
			return nil
		},
	}
}
