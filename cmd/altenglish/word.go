package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/go-altenglish/internal/phoneme"
	"github.com/example/go-altenglish/internal/translit"
	"github.com/spf13/cobra"
)

func newWordCmd() *cobra.Command {
	var noAudio bool

	cmd := &cobra.Command{
		Use:   "word [text]",
		Short: "Transliterate a single English word",
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

			rep, err := pipeline.Word(cmd.Context(), input)
			if err != nil {
				return err
			}

			printWordReport(os.Stdout, rep)
			reportAudio(os.Stdout, rep.Audio, cfg)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noAudio, "no-audio", false, "Skip WAV generation")

	return cmd
}

func printWordReport(w io.Writer, rep translit.WordReport) {
	if len(rep.Ignored) > 0 {
		fmt.Fprintf(w, "Warning: multiple words detected; using %q, ignoring %v\n",
			rep.Entry.Word, rep.Ignored)
	}

	if !rep.Entry.Found() {
		fmt.Fprintf(w, "Could not find %q in the pronunciation dictionary.\n", rep.Entry.Word)
		return
	}

	fmt.Fprintf(w, "Phones: %s\n", phonesLine(rep.Entry.Phones))
	fmt.Fprintf(w, "Engineered symbols: %s\n", rep.Entry.Engineered.Symbols())
	if !rep.Entry.Engineered.FullyMapped() {
		fmt.Fprintf(w, "Unmapped phones (engineered): %s\n", phonesLine(rep.Entry.Engineered.Unmapped))
	}
	if !rep.Entry.Dialect.FullyMapped() {
		fmt.Fprintf(w, "Unmapped phones (synthesizer dialect): %s\n", phonesLine(rep.Entry.Dialect.Unmapped))
	}
}

func phonesLine(phones []phoneme.Phone) string {
	parts := make([]string, len(phones))
	for i, p := range phones {
		parts[i] = string(p)
	}
	return strings.Join(parts, " ")
}
