package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"stem/internal/adapter/analyzer"
)

var (
	wordsVariant string
	wordsQuiet   bool
)

var wordsCmd = &cobra.Command{
	Use:   "words [word...]",
	Short: "Stem words from arguments or stdin",
	Long: `Stem each word with the Porter algorithm. Words are read from the
command line, or from stdin (whitespace-separated) when no arguments are
given. Input is case-folded before stemming.

Examples:
  stem words running connection caresses
  cat vocabulary.txt | stem words`,
	RunE: runWords,
}

func init() {
	rootCmd.AddCommand(wordsCmd)
	wordsCmd.Flags().StringVar(&wordsVariant, "variant", "", "rule variant: standard or paper (default from config)")
	wordsCmd.Flags().BoolVarP(&wordsQuiet, "quiet", "q", false, "print stems only, without the input word")
}

func runWords(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	name := cfg.Stemmer.Variant
	if wordsVariant != "" {
		name = wordsVariant
	}
	variant, err := analyzer.ParseVariant(name)
	if err != nil {
		return err
	}
	stemmer := analyzer.NewPorterStemmerVariant(variant)

	emit := func(word string) {
		word = strings.ToLower(word)
		if wordsQuiet {
			fmt.Println(stemmer.Stem(word))
		} else {
			fmt.Printf("%s\t%s\n", word, stemmer.Stem(word))
		}
	}

	if len(args) > 0 {
		for _, w := range args {
			emit(w)
		}
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		emit(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	return nil
}
