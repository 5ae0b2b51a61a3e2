package main

import (
	"fmt"
	"os"

	"github.com/example/go-altenglish/internal/doctor"
	"github.com/example/go-altenglish/internal/espeak"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the local environment (espeak, dictionary, output dir)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			synth := espeak.New()
			synth.BinaryPath = cfg.ESpeak.BinaryPath

			dcfg := doctor.Config{
				ESpeakVersion: func() (string, error) {
					return synth.Version(cmd.Context())
				},
				DictionaryPath: cfg.Paths.DictionaryPath,
				OutputDir:      cfg.Paths.OutputDir,
			}

			res := doctor.Run(dcfg, os.Stdout)
			if res.Failed() {
				return fmt.Errorf("doctor found %d problem(s)", len(res.Failures()))
			}
			return nil
		},
	}

	return cmd
}
