package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/rmorlok/credagent/config"
	"github.com/rmorlok/credagent/jwt"
	"github.com/spf13/cobra"
)

func cmdSignAssertion() *cobra.Command {
	var (
		credentialName string
		issuer         string
		subject        string
		audience       string
		scopes         []string
		privateKeyPath string
		expiresIn      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "sign-assertion",
		Short: "Sign a jwt-bearer assertion",
		Long:  "Sign the assertion a jwt-bearer credential would present to its token endpoint, either from a configured credential or from explicit flags.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if credentialName != "" {
				return signForCredential(ctx, credentialName, expiresIn)
			}

			if issuer == "" || audience == "" {
				return fmt.Errorf("must specify --credential, or --issuer and --audience")
			}

			if privateKeyPath == "" {
				return fmt.Errorf("must specify private key to sign assertion")
			}

			builder := jwt.NewClaimsBuilder().
				WithIssuer(issuer).
				WithAudience(audience).
				WithExpiresInCtx(ctx, expiresIn)

			if subject != "" {
				builder = builder.WithSubject(subject)
			}

			if len(scopes) > 0 {
				builder = builder.WithScopeIds(scopes)
			}

			token, err := jwt.NewTokenBuilder().
				WithClaimsBuilder(builder).
				WithPrivateKeyPath(privateKeyPath).
				TokenCtx(ctx)
			if err != nil {
				return err
			}

			fmt.Print(token)
			return nil
		},
	}

	cmd.Flags().StringVar(&credentialName, "credential", "", "Sign using a configured jwt_bearer credential")
	cmd.Flags().StringVar(&issuer, "issuer", "", "Assertion issuer")
	cmd.Flags().StringVar(&subject, "subject", "", "Assertion subject; defaults to the issuer")
	cmd.Flags().StringVar(&audience, "audience", "", "Assertion audience")
	cmd.Flags().StringSliceVar(&scopes, "scope", nil, "Scope to request; may be repeated")
	cmd.Flags().StringVar(&privateKeyPath, "privateKeyPath", "", "Private key to use to sign the assertion")
	cmd.Flags().DurationVar(&expiresIn, "expiresIn", 5*time.Minute, "How long the assertion is valid for")

	return cmd
}

func signForCredential(ctx context.Context, credentialName string, expiresIn time.Duration) error {
	cred := cfg.GetRoot().GetCredential(credentialName)
	if cred == nil {
		return errors.Errorf("no credential configured with name '%s'", credentialName)
	}

	auth, ok := cred.Auth.Inner().(*config.CredentialAuthJwtBearer)
	if !ok {
		return errors.Errorf("credential '%s' is not a jwt_bearer credential", credentialName)
	}

	builder := jwt.NewClaimsBuilder().
		WithIssuer(auth.Issuer).
		WithAudience(auth.GetAudienceOrDefault()).
		WithScopes(auth.Scopes).
		WithExpiresInCtx(ctx, expiresIn)

	if auth.Subject != "" {
		builder = builder.WithSubject(auth.Subject)
	}

	token, err := jwt.NewTokenBuilder().
		WithClaimsBuilder(builder).
		WithConfigKey(ctx, auth.Key).
		TokenCtx(ctx)
	if err != nil {
		return err
	}

	fmt.Print(token)
	return nil
}
