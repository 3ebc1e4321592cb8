package main

import (
	"errors"

	"github.com/amp-labs/amp-collections/build"
	"github.com/spf13/cobra"
)

var errNoBuildInfo = errors.New("binary carries no build information")

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the module version, VCS revision and dependency versions",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			info, ok := build.Read()
			if !ok {
				return errNoBuildInfo
			}

			return a.render(info)
		},
	}
}
