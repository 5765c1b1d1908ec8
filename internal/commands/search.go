package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/servicenote/internal/db"
)

var matchLabels = map[int]string{
	db.MatchExact:    "exact",
	db.MatchPrefix:   "prefix",
	db.MatchSuffix:   "suffix",
	db.MatchContains: "contains",
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search Bible students, return visits and notes",
	Long: `Search Bible students, return visits and notes with ranked matching:
- Exact match (highest priority)
- Prefix match
- Suffix match
- Contains (lowest priority)

Search is case insensitive and looks at names, addresses, study material,
topics, placements, note titles and note content.`,
	Args: cobra.MinimumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, a *app) {
		query := strings.Join(args, " ")
		limit, _ := cmd.Flags().GetInt("limit")

		hits, err := a.store.Search(query, limit)
		if err != nil {
			fmt.Printf("Error searching: %v\n", err)
			return
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			renderSearchJSON(hits, query)
			return
		}
		renderSearchTable(hits, query)
	}),
}

// renderSearchJSON outputs search results as JSON
func renderSearchJSON(hits []db.SearchHit, query string) {
	result := struct {
		Query string         `json:"query"`
		Count int            `json:"count"`
		Hits  []db.SearchHit `json:"hits"`
	}{
		Query: query,
		Count: len(hits),
		Hits:  hits,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Printf("Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Println(string(jsonBytes))
}

// renderSearchTable outputs search results as a formatted table
func renderSearchTable(hits []db.SearchHit, query string) {
	fmt.Printf("Search results for '%s' (%d found):\n", query, len(hits))
	if len(hits) == 0 {
		fmt.Println("Nothing matches your search.")
		return
	}

	fmt.Println()
	fmt.Printf("%-8s %-4s %-25s %-10s %-9s %s\n", "KIND", "ID", "NAME", "FIELD", "MATCH", "TEXT")
	fmt.Println(strings.Repeat("-", 80))
	for _, h := range hits {
		fmt.Printf("%-8s %-4d %-25s %-10s %-9s %s\n",
			h.Kind,
			h.ID,
			truncate(h.Title, 25),
			h.Field,
			matchLabels[h.Match],
			truncate(strings.ReplaceAll(h.Text, "\n", " "), 20))
	}
}

func init() {
	searchCmd.Flags().IntP("limit", "l", 0, "Limit number of results")
	searchCmd.Flags().Bool("json", false, "Output as JSON")
}
