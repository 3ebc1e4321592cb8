package main

import (
	"fmt"

	"github.com/amp-labs/amp-collections/collection"
	amperrors "github.com/amp-labs/amp-collections/errors"
	"github.com/amp-labs/amp-collections/logger"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func (a *app) chunkCmd() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "chunk [tokens...]",
		Short: "Split the input into consecutive chunks of at most --size elements",
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < 1 {
				return fmt.Errorf("--size %d: %w", size, amperrors.ErrInvalidLength)
			}

			c, err := a.source(args)
			if err != nil {
				return err
			}

			chunks := [][]string{}
			for sub := range collection.UnfoldSubSequences[string](c, size) {
				chunks = append(chunks, sub.Collect())
			}

			logger.Get(cmd.Context()).Debug("chunked input",
				"elements", humanize.Comma(int64(collection.Count[string](c))),
				"chunks", humanize.Comma(int64(len(chunks))))

			return a.render(chunks)
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", 1, "maximum chunk length")

	return cmd
}

func (a *app) everyCmd() *cobra.Command {
	var step int

	cmd := &cobra.Command{
		Use:   "every [tokens...]",
		Short: "Print the first element and every --step-th element after it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if step < 1 {
				return fmt.Errorf("--step %d: %w", step, amperrors.ErrInvalidStride)
			}

			c, err := a.source(args)
			if err != nil {
				return err
			}

			picked := []string{}
			for elem := range collection.Every[string](c, step) {
				picked = append(picked, elem)
			}

			logger.Get(cmd.Context()).Debug("strided input",
				"elements", humanize.Comma(int64(collection.Count[string](c))),
				"picked", humanize.Comma(int64(len(picked))))

			return a.render(picked)
		},
	}

	cmd.Flags().IntVarP(&step, "step", "n", 1, "stride between picked elements")

	return cmd
}

func (a *app) distanceCmd() *cobra.Command {
	var marker string

	cmd := &cobra.Command{
		Use:   "distance --of TOKEN [tokens...]",
		Short: "Print how many elements precede the first occurrence of --of",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.source(args)
			if err != nil {
				return err
			}

			idx, ok := collection.FirstIndexOf[string](c, marker)
			if !ok {
				return fmt.Errorf("%w: %q", errNotFound, marker)
			}

			distance := collection.DistanceTo[string](c, idx)

			logger.Get(cmd.Context()).Debug("measured distance",
				"marker", marker,
				"index", int(idx),
				"distance", humanize.Comma(int64(distance)))

			return a.render(distance)
		},
	}

	cmd.Flags().StringVar(&marker, "of", "", "element to measure the distance to")
	_ = cmd.MarkFlagRequired("of")

	return cmd
}

func (a *app) betweenCmd() *cobra.Command {
	var from, after, upTo, through string

	cmd := &cobra.Command{
		Use:   "between [--from A|--after A] [--upto B|--through B] [tokens...]",
		Short: "Print the elements bounded by a start and an end marker",
		Long: `Print the elements bounded by a start and an end marker.

--from includes the start marker, --after excludes it; with neither the range
starts at the first element. --upto excludes the end marker, --through
includes it; with neither the range runs to the last element. The end marker
is searched for only at or after the resolved start.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lower := collection.Start[string]()

			switch {
			case cmd.Flags().Changed("from"):
				lower = collection.From(from)
			case cmd.Flags().Changed("after"):
				lower = collection.After(after)
			}

			upper := collection.End[string]()

			switch {
			case cmd.Flags().Changed("upto"):
				upper = collection.UpTo(upTo)
			case cmd.Flags().Changed("through"):
				upper = collection.Through(through)
			}

			c, err := a.source(args)
			if err != nil {
				return err
			}

			sub, ok := collection.Bounded[string](c, lower, upper)
			if !ok {
				return errNotFound
			}

			logger.Get(cmd.Context()).Debug("bounded input",
				"elements", humanize.Comma(int64(collection.Count[string](c))),
				"selected", humanize.Comma(int64(sub.Len())))

			return a.render(sub.Collect())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&from, "from", "", "start at this marker, inclusive")
	flags.StringVar(&after, "after", "", "start after this marker")
	flags.StringVar(&upTo, "upto", "", "stop before this marker")
	flags.StringVar(&through, "through", "", "stop after this marker, inclusive")
	cmd.MarkFlagsMutuallyExclusive("from", "after")
	cmd.MarkFlagsMutuallyExclusive("upto", "through")

	return cmd
}

func (a *app) trimCmd() *cobra.Command {
	var (
		value       string
		front, back bool
	)

	cmd := &cobra.Command{
		Use:   "trim --value X [--front] [--back] [tokens...]",
		Short: "Remove leading and/or trailing elements equal to --value",
		Long: `Remove leading and/or trailing elements equal to --value.

Without --front or --back both ends are trimmed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !front && !back {
				front, back = true, true
			}

			c, err := a.source(args)
			if err != nil {
				return err
			}

			before := collection.Count[string](c)
			matches := func(elem string) bool { return elem == value }

			if back {
				collection.RemoveLastWhile(c, matches)
			}

			if front {
				collection.RemoveWhile(c, matches)
			}

			remaining := collection.Collect[string](c)

			logger.Get(cmd.Context()).Debug("trimmed input",
				"value", value,
				"removed", humanize.Comma(int64(before-len(remaining))))

			if remaining == nil {
				remaining = []string{}
			}

			return a.render(remaining)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&value, "value", "", "element value to trim")
	flags.BoolVar(&front, "front", false, "trim the front")
	flags.BoolVar(&back, "back", false, "trim the back")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}
