package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"Beamcalc/internal/auth"
	"Beamcalc/internal/errors"
	"Beamcalc/internal/server"
)

// Version information, set via ldflags at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func newServeCmd(o *options) *cobra.Command {
	var addr string
	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the checks as a JSON API",
		Long: `Serve every check under /api/tools/{check}/calc until SIGINT or SIGTERM.

Requests need a bearer token when a token key is configured (TOKEN_KEY or
auth.token_key); issue one with "beamcalc token".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := o.cfg
			if addr != "" {
				cfg.Server.Addr = addr
			}
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return server.New(cfg, Version).Run(ctx)
		},
	}
	c.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return c
}

type tokenResult struct {
	Token   string    `json:"token"`
	Subject string    `json:"subject"`
	Expires time.Time `json:"expires"`
}

func newTokenCmd(o *options) *cobra.Command {
	var ttl time.Duration
	c := &cobra.Command{
		Use:   "token <subject>",
		Short: "Issue an API bearer token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !o.cfg.Auth.Enabled() {
				return errors.Config("no token key configured (set TOKEN_KEY or auth.token_key)", nil)
			}
			a := o.cfg.Auth
			if ttl > 0 {
				a.TokenTTL = ttl
			}
			token, exp, err := auth.New(a).Issue(args[0])
			if err != nil {
				return err
			}
			res := tokenResult{Token: token, Subject: args[0], Expires: exp.UTC()}
			return o.render(cmd, res, func(w io.Writer) error {
				fmt.Fprintln(w, token)
				return nil
			})
		},
	}
	c.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default from config)")
	return c
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version info",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "beamcalc %s\n", Version)
			fmt.Fprintf(w, "  commit:  %s\n", Commit)
			fmt.Fprintf(w, "  built:   %s\n", BuildDate)
			fmt.Fprintf(w, "  go:      %s\n", runtime.Version())
			fmt.Fprintf(w, "  os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
