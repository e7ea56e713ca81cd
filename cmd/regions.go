package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/agnivade/levenshtein"
	"github.com/bnema/sms-temp/internal/domain"
	"github.com/spf13/cobra"
)

func newRegionsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List the regions numbers can be allocated in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			regions := domain.Regions()

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(regions)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, region := range regions {
				if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", region.Flag, region.Name, region.DialCode); err != nil {
					return err
				}
			}

			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

const maxSuggestionDistance = 2

func unknownRegionError(err error, name string) error {
	if suggestion, ok := closestRegion(name); ok {
		return fmt.Errorf("%w: %q, did you mean %q?", err, name, suggestion.Name)
	}

	return fmt.Errorf("%w: %q (see `smstemp regions`)", err, name)
}

// closestRegion finds the catalog entry within a couple of edits of name.
func closestRegion(name string) (domain.Region, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return domain.Region{}, false
	}

	var best domain.Region
	bestDist := maxSuggestionDistance + 1
	for _, region := range domain.Regions() {
		dist := levenshtein.ComputeDistance(needle, strings.ToLower(region.Name))
		if dist < bestDist {
			best, bestDist = region, dist
		}
	}

	return best, bestDist <= maxSuggestionDistance
}
