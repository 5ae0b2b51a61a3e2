package main

import (
	"fmt"
	"io"
	"os"

	"github.com/example/go-altenglish/internal/translit"
	"github.com/spf13/cobra"
)

func newSentenceCmd() *cobra.Command {
	var noAudio bool

	cmd := &cobra.Command{
		Use:   "sentence [text]",
		Short: "Transliterate a full English sentence",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			input, err := readInputText(args, os.Stdin)
			if err != nil {
				return err
			}

			pipeline, err := buildPipeline(cfg, noAudio)
			if err != nil {
				return err
			}

			rep, err := pipeline.Sentence(cmd.Context(), input, cfg.Output.PreservePunctuation)
			if err != nil {
				return err
			}

			printSentenceReport(os.Stdout, rep)
			reportAudio(os.Stdout, rep.Audio, cfg)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noAudio, "no-audio", false, "Skip WAV generation")

	return cmd
}

func printSentenceReport(w io.Writer, rep translit.SentenceReport) {
	fmt.Fprintln(w, "Phones (by word):")
	for _, e := range rep.Words {
		if !e.Found() {
			fmt.Fprintf(w, "  %s: <not found>\n", e.Word)
			continue
		}
		fmt.Fprintf(w, "  %s: %s\n", e.Word, phonesLine(e.Phones))
	}

	fmt.Fprintln(w, "\nEngineered symbols (by word):")
	for _, e := range rep.Words {
		if !e.Found() {
			fmt.Fprintf(w, "  %s: <?>(%s)\n", e.Word, e.Word)
			continue
		}
		fmt.Fprintf(w, "  %s: %s\n", e.Word, e.Engineered.Symbols())
	}

	fmt.Fprintln(w, "\nEngineered symbols (sentence):")
	fmt.Fprintln(w, rep.Sentence)

	if len(rep.MissingWords) > 0 {
		fmt.Fprintf(w, "\nWords not found in dictionary: %v\n", rep.MissingWords)
	}
	if len(rep.Unmapped) > 0 {
		fmt.Fprintf(w, "Unmapped phones (engineered): %s\n", phonesLine(rep.Unmapped))
	}
	if len(rep.DialectUnmapped) > 0 {
		fmt.Fprintf(w, "Unmapped phones (synthesizer dialect): %s\n", phonesLine(rep.DialectUnmapped))
	}
}
