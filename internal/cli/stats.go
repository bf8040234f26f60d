package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"stem/config"
	"stem/internal/adapter/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics of the term index",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
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

	stats, err := st.GetStats()
	if err != nil {
		return fmt.Errorf("failed to read stats: %w", err)
	}

	fmt.Printf("Index: %s\n", dbPath)
	fmt.Printf("  Documents:       %d\n", stats.TotalDocs)
	fmt.Printf("  Distinct terms:  %d\n", stats.TotalTerms)
	fmt.Printf("  Avg doc tokens:  %.1f\n", stats.AvgDocTokens)
	return nil
}
