package main

import (
	"io"

	"github.com/five82/tcutil/internal/processing"
	"github.com/five82/tcutil/internal/timecode"
	"github.com/spf13/cobra"
)

func newInfoCmd(g *globalArgs, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "info <input>",
		Short: "Summarize a timecode file",
		Long: `Print the total length, frame count, average and default frame rate and a
fingerprint of the frame timeline, followed by the interval table.
Use "-" to read standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.open(cmd, stdout, stderr, openOptions{})
			if err != nil {
				return err
			}
			defer s.close()

			input := args[0]
			tc, err := processing.Load(input, timecode.DecodeOptions{TotalFrames: s.cfg.TotalFrames}, s.log)
			if err != nil {
				return err
			}
			summary, err := processing.Summarize(input, tc)
			if err != nil {
				return err
			}
			s.rep.Info(summary)
			return nil
		},
	}
}
