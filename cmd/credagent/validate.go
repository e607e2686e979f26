package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func cmdValidate() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(context.Background()); err != nil {
				fmt.Println(err.Error())
				return fmt.Errorf("configuration is invalid")
			}

			color.Green("configuration is valid")
			return nil
		},
	}
}
