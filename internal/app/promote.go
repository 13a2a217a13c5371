package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/heartmarshall/forensiclab-backend/internal/config"
	"github.com/heartmarshall/forensiclab-backend/internal/domain"
	"github.com/heartmarshall/forensiclab-backend/internal/service/user"
)

// Exit codes of the promote command.
const (
	ExitOK      = 0
	ExitFailure = 1
)

const separator = "========================================"

// UserService is the set of operations the promote command drives.
type UserService interface {
	Promote(ctx context.Context, in user.PromoteInput) (*user.PromoteResult, error)
	ListElevated(ctx context.Context) ([]user.ElevatedUser, error)
}

// ConnectFunc opens the store behind a UserService. The returned release func
// must be called exactly once when the command is done with the service.
type ConnectFunc func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (UserService, func(), error)

// PromoteCommand is the operator CLI that elevates a user to an admin role.
type PromoteCommand struct {
	Stdout io.Writer
	Stderr io.Writer

	// LoadConfig is called only after the arguments are valid.
	LoadConfig func() (*config.Config, error)
	Connect    ConnectFunc
}

// promoteArgs is the parsed command line.
type promoteArgs struct {
	input   user.PromoteInput
	list    bool
	timeout time.Duration
}

// Run executes the command with args (excluding the program name) and
// returns the process exit code.
func (c *PromoteCommand) Run(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("promote", flag.ContinueOnError)
	fs.SetOutput(c.Stderr)
	fs.Usage = func() { c.usage(fs) }

	roleFlag := fs.String("role", domain.UserRoleAdmin.String(), "target role: ADMIN or MODERATOR (an existing higher role is never lowered)")
	revoke := fs.Bool("revoke-sessions", false, "revoke the user's active refresh tokens")
	timeout := fs.Duration("timeout", 0, "bound on the whole run (default from PROMOTE_TIMEOUT)")
	showVersion := fs.Bool("version", false, "print the build version and exit")
	list := fs.Bool("list", false, "list current admins and moderators instead of promoting")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitFailure
	}

	if *showVersion {
		fmt.Fprintf(c.Stdout, "promote %s\n", BuildVersion())
		return ExitOK
	}

	parsed, err := parsePromoteArgs(fs, *roleFlag, *revoke, *list, *timeout)
	if err != nil {
		fmt.Fprintf(c.Stderr, "Error: %v\n", err)
		c.usage(fs)
		return ExitFailure
	}

	cfg, err := c.LoadConfig()
	if err != nil {
		fmt.Fprintf(c.Stderr, "Error loading configuration: %v\n", err)
		return ExitFailure
	}

	logger := newLogger(cfg.Log, c.Stderr)

	if parsed.timeout == 0 {
		parsed.timeout = cfg.Promote.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, parsed.timeout)
	defer cancel()

	svc, release, err := c.Connect(ctx, cfg, logger)
	if err != nil {
		logger.ErrorContext(ctx, "connect to database", slog.String("error", err.Error()))
		fmt.Fprintf(c.Stderr, "Error connecting to database: %v\n", err)
		return ExitFailure
	}
	defer release()

	if parsed.list {
		return c.runList(ctx, logger, svc)
	}

	result, err := svc.Promote(ctx, parsed.input)
	if err != nil {
		return c.reportError(ctx, logger, parsed.input.Username, err)
	}

	c.reportSuccess(result, parsed.input.RevokeSessions)
	return ExitOK
}

// parsePromoteArgs checks everything that can be checked without the store.
func parsePromoteArgs(fs *flag.FlagSet, role string, revoke, list bool, timeout time.Duration) (promoteArgs, error) {
	if timeout < 0 {
		return promoteArgs{}, fmt.Errorf("invalid -timeout %s: must be positive", timeout)
	}
	if list {
		if fs.NArg() > 0 {
			return promoteArgs{}, errors.New("-list takes no username")
		}
		return promoteArgs{list: true, timeout: timeout}, nil
	}

	if fs.NArg() == 0 {
		return promoteArgs{}, errors.New("missing username")
	}
	if fs.NArg() > 1 {
		return promoteArgs{}, fmt.Errorf("expected one username, got %d arguments (flags go before the username)", fs.NArg())
	}

	parsedRole, ok := domain.ParseUserRole(role)
	if !ok {
		parsedRole = domain.UserRole(strings.TrimSpace(role))
	}

	in := user.PromoteInput{
		Username:       fs.Arg(0),
		Role:           parsedRole,
		RevokeSessions: revoke,
	}
	if err := in.Validate(); err != nil {
		return promoteArgs{}, err
	}

	return promoteArgs{input: in, timeout: timeout}, nil
}

func (c *PromoteCommand) reportError(ctx context.Context, logger *slog.Logger, username string, err error) int {
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprintf(c.Stderr, "User %q not found.\n", username)
	case errors.As(err, &verr):
		fmt.Fprintf(c.Stderr, "User %q was not updated: %v\n", username, verr)
	default:
		logger.ErrorContext(ctx, "promote user",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
		fmt.Fprintf(c.Stderr, "Error updating user: %v\n", err)
	}
	return ExitFailure
}

func (c *PromoteCommand) reportSuccess(result *user.PromoteResult, revoked bool) {
	w := c.Stdout
	fmt.Fprintln(w, "✓ User updated successfully!")
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "Username: %s\n", result.User.Username)
	fmt.Fprintf(w, "Email: %s\n", result.User.Email)
	fmt.Fprintf(w, "Role: %s\n", result.User.Role)
	if revoked {
		fmt.Fprintf(w, "Sessions revoked: %d\n", result.SessionsRevoked)
	}
	fmt.Fprintln(w, separator)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Please log out and log back in to access the admin panel.")
}

func (c *PromoteCommand) runList(ctx context.Context, logger *slog.Logger, svc UserService) int {
	users, err := svc.ListElevated(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "list elevated users", slog.String("error", err.Error()))
		fmt.Fprintf(c.Stderr, "Error listing users: %v\n", err)
		return ExitFailure
	}

	if len(users) == 0 {
		fmt.Fprintln(c.Stdout, "No admin or moderator accounts found.")
		return ExitOK
	}

	fmt.Fprintf(c.Stdout, "Elevated users: %d\n", len(users))
	fmt.Fprintln(c.Stdout, separator)

	tw := tabwriter.NewWriter(c.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "USERNAME\tEMAIL\tROLE\tSESSIONS\tROLE CHANGED")
	for _, e := range users {
		changed := "-"
		if e.RoleChangedAt != nil {
			changed = e.RoleChangedAt.UTC().Format(time.DateTime) + " UTC"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", e.User.Username, e.User.Email, e.User.Role, e.ActiveSessions, changed)
	}
	tw.Flush()

	fmt.Fprintln(c.Stdout, separator)
	return ExitOK
}

func (c *PromoteCommand) usage(fs *flag.FlagSet) {
	fmt.Fprintln(c.Stderr, "Usage: promote [flags] <username>")
	fmt.Fprintln(c.Stderr, "       promote -list")
	fmt.Fprintln(c.Stderr, "Example: promote myusername")
	fmt.Fprintln(c.Stderr)
	fmt.Fprintln(c.Stderr, "Flags:")
	fs.PrintDefaults()
}
