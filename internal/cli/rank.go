package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zestie-cloud/pawmatch/internal/domain/match"
	catalogrepo "github.com/zestie-cloud/pawmatch/internal/repository/catalog"
	matcheruc "github.com/zestie-cloud/pawmatch/internal/usecase/matcher"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank a feed file offline",
		Long:  "Loads a normalized feed file and prints ranked matches for the given hard filters and preferences, without a running server.",
		Run:   runRank,
	}

	cmd.Flags().String("feed", "", "Path to the normalized feed JSON file (required)")
	cmd.Flags().String("filters", "", `Hard filters as JSON, e.g. '{"size":"small","good_with_kids":true}'`)
	cmd.Flags().String("prefs", "", `Preferences as a JSON array, e.g. '[{"field":"energy_level","hardness":"nice","value":7}]'`)
	cmd.Flags().StringSlice("seen", nil, "Dog IDs to exclude from ranking")
	_ = cmd.MarkFlagRequired("feed")

	RootCmd.AddCommand(cmd)
}

// rankedDog is the compact offline output row.
type rankedDog struct {
	DogID        string         `json:"dog_id"`
	Name         string         `json:"name"`
	Section      match.Section  `json:"section"`
	Score        float64        `json:"score"`
	Completeness float64        `json:"completeness"`
	Reasons      []match.Reason `json:"reasons"`
}

type rankOutput struct {
	Results       []rankedDog `json:"results"`
	TotalFound    int         `json:"total_found"`
	PromptTrigger string      `json:"prompt_trigger,omitempty"`
}

func runRank(cmd *cobra.Command, args []string) {
	feedPath, _ := cmd.Flags().GetString("feed")
	filtersJSON, _ := cmd.Flags().GetString("filters")
	prefsJSON, _ := cmd.Flags().GetString("prefs")
	seen, _ := cmd.Flags().GetStringSlice("seen")

	var filters map[string]any
	if filtersJSON != "" {
		if err := json.Unmarshal([]byte(filtersJSON), &filters); err != nil {
			exitErr("parse filters", err)
		}
	}

	var prefs []match.PrefSpec
	if prefsJSON != "" {
		if err := json.Unmarshal([]byte(prefsJSON), &prefs); err != nil {
			exitErr("parse prefs", err)
		}
	}

	req, err := match.NewRequest(filters, prefs, seen)
	if err != nil {
		exitErr("build request", err)
	}

	records, err := catalogrepo.LoadFile(feedPath, zap.NewNop())
	if err != nil {
		exitErr("load feed", err)
	}

	holder := catalogrepo.NewHolder()
	holder.Swap(records)

	svc := matcheruc.New(holder, matcheruc.DefaultConfig())
	resp, err := svc.Match(cmd.Context(), &req)
	if err != nil {
		exitErr("match", err)
	}

	out := rankOutput{
		Results:       make([]rankedDog, 0, len(resp.Results)),
		TotalFound:    resp.TotalFound,
		PromptTrigger: resp.PromptTrigger,
	}
	for i := range resp.Results {
		r := &resp.Results[i]
		out.Results = append(out.Results, rankedDog{
			DogID:        r.Dog.ID(),
			Name:         r.Dog.Name(),
			Section:      r.Section,
			Score:        r.Score,
			Completeness: r.Completeness,
			Reasons:      r.Reasons,
		})
	}

	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(b))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
