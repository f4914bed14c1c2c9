package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hungrypc/recreate-framework/internal/treefile"
	"github.com/hungrypc/recreate-framework/pkg/dom"
	"github.com/hungrypc/recreate-framework/pkg/sched"
)

func renderCmd() *cobra.Command {
	var (
		budget  time.Duration
		frame   time.Duration
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "render [tree.yaml]",
		Short: "Mount a tree description and print its HTML",
		Long: `Render mounts a YAML tree description into an in-memory document across
cooperative idle slices and prints the container's HTML when the pass
completes. Without an argument it mounts a built-in sample tree.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(verbose)

			tree := sampleTree()
			if len(args) == 1 {
				loaded, err := treefile.Load(args[0])
				if err != nil {
					return err
				}
				tree = loaded
			}

			loop := sched.NewLoop(
				sched.WithSliceBudget(budget),
				sched.WithFrameInterval(frame),
			)
			defer loop.Close()

			doc := dom.NewMemoryDocument()
			container := doc.CreateElement("container")

			s := sched.New(doc, loop, sched.WithLogger(logger))
			start := time.Now()
			s.Mount(tree, container)
			<-s.Done()
			if err := s.Err(); err != nil {
				return err
			}

			html, err := dom.InnerHTML(container)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), html)

			logger.Info("mount complete",
				"fibers", s.Processed(),
				"nodes", doc.Created(),
				"elapsed", time.Since(start),
			)
			return nil
		},
	}

	cmd.Flags().DurationVar(&budget, "budget", sched.DefaultSliceBudget, "Time budget per idle slice")
	cmd.Flags().DurationVar(&frame, "frame", time.Millisecond, "Pacing interval between idle slices")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}
