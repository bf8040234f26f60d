package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"stem/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "stem",
	Short: "Porter stemmer and term index for text search pipelines",
	Long: `stem reduces English words to their linguistic stems with the Porter
algorithm and maintains a stemmed term-frequency index over local files, so
morphological variants (connect, connected, connecting, connection) all map
to one comparable token.

Example usage:
  stem words running connection   # Stem words from the command line
  stem index .                    # Index text files in current directory
  stem lookup -t connecting       # Find documents by stemmed term`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./stem.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
