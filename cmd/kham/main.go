// Command kham segments Thai text read from standard input, one line at a
// time, and prints the tokens of each line joined by a delimiter.
package main

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zubayear/kham/tokenizer"
)

// Starter lexicon used when --dict is "default". Real deployments point
// --dict at a full dictionary file, one word per line.
//
//go:embed words_th.txt
var defaultDict string

func newSegmentCommand(logger *zap.Logger) *cobra.Command {
	var (
		dictPath  string
		delimiter string
		safe      bool
		parallel  bool
	)

	cmd := &cobra.Command{
		Use:   "segment",
		Short: "Tokenize standard input into words",
		Long: "Reads standard input line by line, segments each line into words " +
			"against the dictionary, and prints the tokens joined by the delimiter.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var tk *tokenizer.Tokenizer
			if dictPath == "default" {
				tk = tokenizer.FromWordList(strings.Split(defaultDict, "\n"))
			} else {
				loaded, err := tokenizer.FromFile(dictPath)
				if err != nil {
					logger.Error("cannot load dictionary",
						zap.String("path", dictPath),
						zap.Error(err))
					return err
				}
				tk = loaded
			}
			logger.Info("dictionary loaded",
				zap.String("path", dictPath),
				zap.Int("words", tk.WordCount()))

			scanner := bufio.NewScanner(cmd.InOrStdin())
			out := cmd.OutOrStdout()
			for scanner.Scan() {
				tokens, err := tk.Segment(scanner.Text(), safe, parallel)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, strings.Join(tokens, delimiter))
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVarP(&dictPath, "dict", "d", "default", `dictionary file path, or "default" for the embedded starter lexicon`)
	cmd.Flags().StringVarP(&delimiter, "delimiter", "s", "|", "string printed between tokens")
	cmd.Flags().BoolVarP(&safe, "safe", "z", false, "run in safe mode to avoid long running edge cases")
	cmd.Flags().BoolVarP(&parallel, "parallel", "p", false, "run in multithread mode")
	return cmd
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	root := &cobra.Command{
		Use:           "kham",
		Short:         "Dictionary-based Thai word segmentation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSegmentCommand(logger))

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
