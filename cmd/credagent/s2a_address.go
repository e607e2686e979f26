package main

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func cmdS2AAddress() *cobra.Command {
	var details bool

	cmd := &cobra.Command{
		Use:   "s2a-address",
		Short: "Print the secure session agent address for this VM",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			d, err := newDeps(ctx)
			if err != nil {
				return err
			}

			if !details {
				// Empty output is the contract when no agent is available; callers treat it
				// as "no agent" rather than a failure.
				address := d.agent.GetAddress(ctx)
				if address == "" {
					color.Yellow("no secure session agent available for this vm")
					return nil
				}

				fmt.Println(address)
				return nil
			}

			mtlsConfig, err := d.agent.GetMTLSConfig(ctx)
			if err != nil {
				return err
			}

			if mtlsConfig.S2AAddress == "" {
				color.Yellow("no secure session agent available for this vm")
				return nil
			}

			fmt.Printf("address:    %s\n", mtlsConfig.S2AAddress)
			fmt.Printf("fetched at: %s\n", mtlsConfig.FetchedAt)
			fmt.Printf("expires:    %s (%s)\n", mtlsConfig.ExpiresAt(), humanize.Time(mtlsConfig.ExpiresAt()))

			return nil
		},
	}

	cmd.Flags().BoolVar(&details, "details", false, "Show cache validity details along with the address")

	return cmd
}
