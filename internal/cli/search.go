package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/spf13/cobra"

	"github.com/mattewlondono22/smartagents-desktop/internal/cli/common"
	"github.com/mattewlondono22/smartagents-desktop/pkg/models"
	"github.com/mattewlondono22/smartagents-desktop/pkg/printer"
)

const documentPreviewWidth = 60

var (
	searchAgentID      string
	searchTopK         int
	searchOutputFormat string
)

var SearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search an agent's uploaded documents",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := common.ValidateOutputFormat(searchOutputFormat); err != nil {
			return err
		}
		query := strings.Join(args, " ")

		c, err := common.SearchClient()
		if err != nil {
			return err
		}
		resp, err := c.Search(common.Context(cmd), searchAgentID, query, searchTopK)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		out := cmd.OutOrStdout()
		if searchOutputFormat == common.OutputJSON {
			return printer.PrintJSON(out, resp)
		}
		if len(resp.Results) == 0 {
			fmt.Fprintln(out, "No results.")
			return nil
		}
		return printer.PrintTable(out, []string{"#", "File", "Document"}, searchRows(resp.Results))
	},
}

func searchRows(results []models.SearchResult) [][]string {
	rows := make([][]string, 0, len(results))
	for i, r := range results {
		doc := strings.Join(strings.Fields(r.Document), " ")
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.Metadata["file_name"],
			truncate.StringWithTail(doc, documentPreviewWidth, "..."),
		})
	}
	return rows
}

func init() {
	SearchCmd.Flags().StringVar(&searchAgentID, "agent", "", "Agent whose collection is searched")
	SearchCmd.Flags().IntVar(&searchTopK, "top-k", 5, "Number of results to return")
	SearchCmd.Flags().StringVarP(&searchOutputFormat, "output", "o", common.OutputTable, "Output format (table, json)")
	_ = SearchCmd.MarkFlagRequired("agent")
}
