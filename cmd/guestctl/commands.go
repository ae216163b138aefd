package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/guestlist/internal/auth"
	"github.com/mmynk/guestlist/internal/models"
	"github.com/mmynk/guestlist/pkg/api"
	"github.com/mmynk/guestlist/pkg/api/apiconnect"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	server  string
	token   string
	timeout time.Duration
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "guestctl",
		Short:         "Manage a guest list",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `guestctl talks to a guestlist server.

Available subcommands:
  add            - Add a guest
  list           - List all guests
  select         - Select a guest for the details view
  show           - Show the selected guest
  delete         - Delete a guest by id
  login          - Exchange the host password for a token
  hash-password  - Print a bcrypt hash for GUESTLIST_HOST_PASSWORD_HASH`,
	}

	root.PersistentFlags().StringVar(&opts.server, "server", envOr("GUESTLIST_URL", "http://localhost:8080"), "Server URL (or set GUESTLIST_URL)")
	root.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("GUESTLIST_TOKEN"), "Host token (or set GUESTLIST_TOKEN)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Request timeout")

	root.AddCommand(
		newAddCmd(opts),
		newListCmd(opts),
		newSelectCmd(opts),
		newShowCmd(opts),
		newDeleteCmd(opts),
		newLoginCmd(opts),
		newHashPasswordCmd(),
	)
	return root
}

func (o *options) guestClient() *apiconnect.GuestServiceClient {
	return apiconnect.NewGuestServiceClient(http.DefaultClient, o.server)
}

func (o *options) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), o.timeout)
}

// authorize attaches the host token, if any, to req.
func authorize[T any](o *options, req *connect.Request[T]) *connect.Request[T] {
	if o.token != "" {
		req.Header().Set("Authorization", "Bearer "+o.token)
	}
	return req
}

func newAddCmd(opts *options) *cobra.Command {
	var (
		name    string
		age     string
		major   bool
		hobbies string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a guest",
		Example: `  guestctl add --name Ana --age 20 --major --hobbies "reading, chess"`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var draft models.Draft
			draft.SetName(name)
			if err := draft.SetAgeText(age); err != nil {
				return err
			}
			draft.SetMajor(major)
			draft.SetHobbies(hobbies)

			ctx, cancel := opts.context(cmd)
			defer cancel()

			resp, err := opts.guestClient().AddGuest(ctx, authorize(opts, connect.NewRequest(&api.AddGuestRequest{
				Name:    draft.Name,
				Age:     draft.Age,
				Major:   draft.Major,
				Hobbies: draft.Hobbies,
			})))
			if err != nil {
				return describe(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added guest %d\n", resp.Msg.Guest.ID)
			printGuest(cmd.OutOrStdout(), resp.Msg.Guest)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Guest name")
	cmd.Flags().StringVar(&age, "age", "", "Guest age in years")
	cmd.Flags().BoolVar(&major, "major", false, "Mark the guest as an adult")
	cmd.Flags().StringVar(&hobbies, "hobbies", "", "Comma-separated hobbies")
	return cmd
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all guests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			resp, err := opts.guestClient().ListGuests(ctx, connect.NewRequest(&api.ListGuestsRequest{}))
			if err != nil {
				return describe(err)
			}

			out := cmd.OutOrStdout()
			if len(resp.Msg.Guests) == 0 {
				fmt.Fprintln(out, "No guests yet.")
				return nil
			}
			for _, g := range resp.Msg.Guests {
				fmt.Fprintf(out, "%d\t%s\n", g.ID, g.Name)
			}
			return nil
		},
	}
}

func newSelectCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "select [id]",
		Short: "Select a guest; without an id, clear the selection",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id int
			if len(args) == 1 {
				var err error
				if id, err = parseID(args[0]); err != nil {
					return err
				}
			}

			ctx, cancel := opts.context(cmd)
			defer cancel()

			resp, err := opts.guestClient().SelectGuest(ctx, connect.NewRequest(&api.SelectGuestRequest{ID: id}))
			if err != nil {
				return describe(err)
			}

			if resp.Msg.Guest == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No guest selected.")
				return nil
			}
			printGuest(cmd.OutOrStdout(), resp.Msg.Guest)
			return nil
		},
	}
}

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the selected guest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			resp, err := opts.guestClient().GetSelection(ctx, connect.NewRequest(&api.GetSelectionRequest{}))
			if err != nil {
				return describe(err)
			}
			if resp.Msg.Guest == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No guest selected.")
				return nil
			}
			printGuest(cmd.OutOrStdout(), resp.Msg.Guest)
			return nil
		},
	}
}

func newDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a guest by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := opts.context(cmd)
			defer cancel()

			resp, err := opts.guestClient().DeleteGuest(ctx, authorize(opts, connect.NewRequest(&api.DeleteGuestRequest{ID: id})))
			if err != nil {
				return describe(err)
			}

			out := cmd.OutOrStdout()
			if !resp.Msg.Deleted {
				fmt.Fprintf(out, "No guest with id %d.\n", id)
				return nil
			}
			fmt.Fprintf(out, "Deleted guest %d\n", id)
			if resp.Msg.SelectionCleared {
				fmt.Fprintln(out, "Selection cleared.")
			}
			return nil
		},
	}
}

func newLoginCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Read the host password from stdin and print a token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readLine(cmd.InOrStdin())
			if err != nil {
				return err
			}

			ctx, cancel := opts.context(cmd)
			defer cancel()

			client := apiconnect.NewAuthServiceClient(http.DefaultClient, opts.server)
			resp, err := client.Login(ctx, connect.NewRequest(&api.LoginRequest{Password: password}))
			if err != nil {
				return describe(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Msg.Token)
			return nil
		},
	}
}

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Read a password from stdin and print its bcrypt hash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readLine(cmd.InOrStdin())
			if err != nil {
				return err
			}
			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func printGuest(w io.Writer, g *api.Guest) {
	adult := "no"
	if g.Major {
		adult = "yes"
	}
	fmt.Fprintf(w, "Name:    %s\n", g.Name)
	fmt.Fprintf(w, "Age:     %d\n", g.Age)
	fmt.Fprintf(w, "Adult:   %s\n", adult)
	fmt.Fprintf(w, "Hobbies: %s\n", strings.Join(g.Hobbies, ", "))
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid guest id %q", s)
	}
	return id, nil
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// describe turns RPC errors into the message a user should see.
func describe(err error) error {
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		return err
	}
	switch connectErr.Code() {
	case connect.CodeInvalidArgument:
		return fmt.Errorf("guest rejected: %s", connectErr.Message())
	case connect.CodeUnauthenticated:
		return errors.New("not authorized; run guestctl login and pass --token")
	}
	return err
}
