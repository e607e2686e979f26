package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/rmorlok/credagent/jwt"
	"github.com/rmorlok/credagent/oauth2"
	"github.com/spf13/cobra"
)

func cmdToken() *cobra.Command {
	var call string

	cmd := &cobra.Command{
		Use:   "token <credential-name>",
		Short: "Mint an access token for a configured credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			d, err := newDeps(ctx)
			if err != nil {
				return err
			}

			source, err := oauth2.ForCredential(cfg, d.httpf, d.mds, d.redis, d.logger, args[0])
			if err != nil {
				return err
			}

			token, err := source.Token(ctx)
			if err != nil {
				return err
			}

			if call != "" {
				return callWithToken(ctx, call, token)
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(token)
		},
	}

	cmd.Flags().StringVar(&call, "call", "", "Instead of printing the token, GET this URL with the token as a bearer credential")

	return cmd
}

func callWithToken(ctx context.Context, url string, token *oauth2.Token) error {
	req := resty.New().R().SetContext(ctx)
	req = jwt.NewSigner(token.AccessToken).SignRestyRequest(req)

	resp, err := req.Get(url)
	if err != nil {
		return errors.Wrapf(err, "failed to call '%s'", url)
	}

	fmt.Printf("%s %s\n", resp.Status(), resp.Proto())
	fmt.Println(string(resp.Body()))

	return nil
}
