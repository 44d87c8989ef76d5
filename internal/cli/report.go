package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/darkstore/rackplan/pkg/plan"
	"github.com/darkstore/rackplan/pkg/report"
)

// newReportCmd creates the report command, which generates the text
// operations report for a saved solution.
func newReportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "report <solution.json>",
		Short: "Generate the text operations report for a saved solution",
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
			sol, err := doc.ToSolution()
			if err != nil {
				return err
			}

			text := report.Generate(sol, layout)
			if output == "" {
				fmt.Print(text)
				return nil
			}
			if err := os.WriteFile(output, []byte(text), 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Report written")
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the report to a file instead of stdout")
	return cmd
}
