package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"stem/config"
	"stem/internal/adapter/store"
	"stem/internal/usecase"
)

var (
	lookupTerm string
	lookupTopK int
	lookupJSON bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Find indexed documents by term",
	Long: `Look up a word in the term index. The word is case-folded and
stemmed with the same analyzer configuration used at index time, so any
morphological variant finds the same documents.

Examples:
  stem lookup -t connecting
  stem lookup -t connection --top-k 5 --json`,
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().StringVarP(&lookupTerm, "term", "t", "", "word to look up (required)")
	lookupCmd.Flags().IntVarP(&lookupTopK, "top-k", "k", 0, "number of results (default from config)")
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "output as JSON")
	lookupCmd.MarkFlagRequired("term")
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	rootDir := GetRootDir()

	dbPath := config.IndexDBPath(rootDir)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("no index found. Run 'stem index' first")
	}

	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open index: %w", err)
	}
	defer st.Close()

	lookupUC := usecase.NewLookupUseCase(st, newTokenizer(cfg))

	topK := cfg.Lookup.TopK
	if lookupTopK > 0 {
		topK = lookupTopK
	}

	result, err := lookupUC.Lookup(lookupTerm, topK)
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	if lookupJSON {
		output, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	if len(result.Hits) == 0 {
		fmt.Printf("No documents contain %q (stemmed from %q).\n", result.Term, lookupTerm)
		return nil
	}
	fmt.Printf("Found %d documents for term %q:\n\n", len(result.Hits), result.Term)
	for i, hit := range result.Hits {
		fmt.Printf("  [%d] %s (tf: %d)\n", i+1, hit.Path, hit.TF)
	}
	return nil
}
