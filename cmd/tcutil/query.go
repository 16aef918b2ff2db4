package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/five82/tcutil/internal/processing"
	"github.com/five82/tcutil/internal/timecode"
	"github.com/five82/tcutil/internal/util"
	"github.com/spf13/cobra"
)

func newFrameCmd(g *globalArgs, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "frame <input> <time>",
		Short: "Find the frame displayed at a time",
		Long: `Print the frame shown at the given time and the frame's own start time.
Times may be written as HH:MM:SS.fff, MM:SS.fff, seconds, or a duration such
as 1m30s. Times past the end resolve to the last frame.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, ok := util.ParseTimestamp(args[1])
			if !ok {
				return fmt.Errorf("invalid time %q", args[1])
			}

			s, err := g.open(cmd, stdout, stderr, openOptions{})
			if err != nil {
				return err
			}
			defer s.close()

			tc, err := processing.Load(args[0], timecode.DecodeOptions{TotalFrames: s.cfg.TotalFrames}, s.log)
			if err != nil {
				return err
			}
			s.rep.Query(processing.FrameAt(args[0], tc, ts))
			return nil
		},
	}
}

func newTimeCmd(g *globalArgs, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "time <input> <frame>",
		Short: "Find the presentation time of a frame",
		Long:  `Print the time at which the given zero-based frame is displayed.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			frame, err := strconv.Atoi(args[1])
			if err != nil || frame < 0 {
				return fmt.Errorf("invalid frame %q", args[1])
			}

			s, err := g.open(cmd, stdout, stderr, openOptions{})
			if err != nil {
				return err
			}
			defer s.close()

			tc, err := processing.Load(args[0], timecode.DecodeOptions{TotalFrames: s.cfg.TotalFrames}, s.log)
			if err != nil {
				return err
			}
			s.rep.Query(processing.TimeAt(args[0], tc, frame))
			return nil
		},
	}
}
