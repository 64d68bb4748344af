// Command cli operates on the bank database directly, without the HTTP API.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amirasaad/minibank/infra"
	"github.com/amirasaad/minibank/infra/cache"
	"github.com/amirasaad/minibank/infra/migrations"
	"github.com/amirasaad/minibank/infra/initializer"
	infrarepo "github.com/amirasaad/minibank/infra/repository"
	"github.com/amirasaad/minibank/pkg/app"
	"github.com/amirasaad/minibank/pkg/config"
	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"golang.org/x/term"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  register  <name> <national-id>
  deposit   <national-id> <amount>
  withdraw  <national-id> <amount>
  transfer  <national-id> <dest-national-id> <amount>
  statement <national-id>`

var errUsage = errors.New("invalid arguments")

var (
	success = color.New(color.FgGreen, color.Bold)
	failure = color.New(color.FgRed, color.Bold)
	label   = color.New(color.FgCyan)
)

// passwordReader prompts for a secret.
type passwordReader func(prompt string) (string, error)

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(2)
	}
	cfg, err := config.Load(".env")
	if err != nil {
		_, _ = failure.Fprintln(os.Stderr, "Failed to load configuration:", err)
		os.Exit(1)
	}
	a, cleanup, err := newApp(cfg)
	if err != nil {
		_, _ = failure.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer cleanup()

	if err := run(context.Background(), a, os.Args[1:], readPassword(os.Stdin, os.Stderr), os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
		}
		_, _ = failure.Fprintln(os.Stderr, "Error:", err)
		cleanup()
		os.Exit(1)
	}
}

func newApp(cfg *config.App) (*app.App, func(), error) {
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := migrations.Up(db); err != nil {
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	logCfg := config.Log{}
	if cfg.Log != nil {
		logCfg = *cfg.Log
	}
	// Only warnings and errors reach the terminal.
	logCfg.Level = max(logCfg.Level, int(log.WarnLevel))
	logger := initializer.SetupLogger(&logCfg, os.Stderr)
	a := app.New(&app.Deps{
		Uow:             infrarepo.NewUoW(db),
		RevocationStore: cache.NewMemoryRevocationStore(),
		Logger:          logger,
	}, cfg)
	return a, cleanup, nil
}

// readPassword reads without echo from a terminal, or a line otherwise.
func readPassword(in *os.File, prompt io.Writer) passwordReader {
	lines := bufio.NewReader(in)
	return func(p string) (string, error) {
		_, _ = label.Fprint(prompt, p)
		if term.IsTerminal(int(in.Fd())) {
			b, err := term.ReadPassword(int(in.Fd()))
			fmt.Fprintln(prompt)
			return string(b), err
		}
		line, err := lines.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
}

func run(ctx context.Context, a *app.App, args []string, password passwordReader, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "register":
		if len(args) != 2 {
			return errUsage
		}
		pw, err := password("Password: ")
		if err != nil {
			return err
		}
		reg, err := a.UserService.Register(ctx, args[0], args[1], pw)
		if err != nil {
			return err
		}
		_, _ = success.Fprintf(out, "Registered %s\n", args[0])
		fmt.Fprintf(out, "%s %s\n%s %s\n", label.Sprint("user:"), reg.UserID, label.Sprint("account:"), reg.AccountID)
		return nil

	case "deposit", "withdraw":
		if len(args) != 2 {
			return errUsage
		}
		amount, err := decimal.NewFromString(args[1])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[1], err)
		}
		pw, err := password("Password: ")
		if err != nil {
			return err
		}
		u, err := a.AuthService.Authenticate(ctx, args[0], pw)
		if err != nil {
			return err
		}
		if cmd == "deposit" {
			res, err := a.AccountService.Deposit(ctx, u.ID, amount)
			if err != nil {
				return err
			}
			_, _ = success.Fprintf(out, "Deposited %s. New balance: %s\n", amount.StringFixed(2), res.Balance.StringFixed(2))
			return nil
		}
		res, err := a.AccountService.Withdraw(ctx, u.ID, pw, amount)
		if err != nil {
			return err
		}
		_, _ = success.Fprintf(out, "Withdrew %s. New balance: %s\n", amount.StringFixed(2), res.Balance.StringFixed(2))
		return nil

	case "transfer":
		if len(args) != 3 {
			return errUsage
		}
		amount, err := decimal.NewFromString(args[2])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[2], err)
		}
		pw, err := password("Password: ")
		if err != nil {
			return err
		}
		u, err := a.AuthService.Authenticate(ctx, args[0], pw)
		if err != nil {
			return err
		}
		res, err := a.AccountService.Transfer(ctx, u.ID, pw, args[1], amount)
		if err != nil {
			return err
		}
		_, _ = success.Fprintf(out, "Transferred %s to %s. New balance: %s\n",
			amount.StringFixed(2), res.Incoming.AccountID, res.Balance.StringFixed(2))
		return nil

	case "statement":
		if len(args) != 1 {
			return errUsage
		}
		pw, err := password("Password: ")
		if err != nil {
			return err
		}
		u, err := a.AuthService.Authenticate(ctx, args[0], pw)
		if err != nil {
			return err
		}
		st, err := a.AccountService.Statement(ctx, u.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s\n", label.Sprint("account:"), st.AccountID)
		for _, tx := range st.Transactions {
			sign := "-"
			if tx.Kind.Credits() {
				sign = "+"
			}
			fmt.Fprintf(out, "%s  %-12s %s%s\n",
				tx.CreatedAt.Format("2006-01-02 15:04:05"), tx.Kind, sign, tx.Amount.StringFixed(2))
		}
		_, _ = success.Fprintf(out, "Balance: %s\n", st.Balance.StringFixed(2))
		return nil
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}
