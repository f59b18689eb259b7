// chatsh is an interactive console chat shell built on the chatcmd framework.
// It exists to exercise the library end to end: registration, requirement
// gating, argument resolution, flag parsing, message delivery and usage
// accounting.
package main

import (
	"bufio"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/term"
	"golang.org/x/time/rate"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/dispatch-tools/chatcmd/command"
	"github.com/dispatch-tools/chatcmd/flags"
	"github.com/dispatch-tools/chatcmd/internal/config"
	"github.com/dispatch-tools/chatcmd/internal/console"
	"github.com/dispatch-tools/chatcmd/internal/usagelog"
	"github.com/dispatch-tools/chatcmd/message"
	"github.com/dispatch-tools/chatcmd/requirement"
	"github.com/dispatch-tools/chatcmd/resolver"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(&lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
	}).With().Timestamp().Logger().Level(level)

	db, err := usagelog.Open(cfg.UsageDB)
	if err != nil {
		return err
	}
	defer db.Close()

	enableColor := term.IsTerminal(int(os.Stdout.Fd())) && !cfg.NoColor
	renderer := console.NewRenderer(os.Stdout, enableColor)

	regs := buildRegistries(cfg, renderer, &logger)

	// Rejection accounting for the usage log.
	rejected := false
	regs.Messages.Observe(func(key message.Key, _ any, _ message.Context) {
		rejected = true
	})

	root, err := buildCommand(cfg, renderer, db, regs)
	if err != nil {
		return err
	}

	sender := console.Sender{User: currentUser(), Admin: currentUser() == cfg.AdminUser}
	logger.Info().Str("user", sender.User).Bool("admin", sender.Admin).Msg("session started")
	renderer.Printf("chatsh ready, %s. Type %shelp to list commands, exit to quit.", sender.User, cfg.Prefix)

	scanner := bufio.NewScanner(os.Stdin)
	for prompt(cfg.Prefix); scanner.Scan(); prompt(cfg.Prefix) {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}
		line = strings.TrimPrefix(line, cfg.Prefix)

		tokens, err := console.Tokenize(line)
		if err != nil {
			renderer.Printf("unbalanced quoting: %v", err)
			continue
		}

		rejected = false
		invocationID := uuid.NewString()
		started := time.Now()

		execErr := root.Execute(sender, command.NewTokens(tokens), map[string]any{
			"invocation_id": invocationID,
		})

		outcome := usagelog.OutcomeOK
		switch {
		case execErr != nil:
			outcome = usagelog.OutcomeFault
			logger.Error().Err(execErr).Str("invocation", invocationID).Msg("command fault")
			renderer.Printf("command failed: %v", execErr)
		case rejected:
			outcome = usagelog.OutcomeRejected
		}

		record := usagelog.Record{
			ID:         invocationID,
			Command:    root.Name(),
			SubCommand: firstToken(tokens),
			Sender:     sender.User,
			Outcome:    outcome,
			Duration:   time.Since(started),
		}
		if err := usagelog.Insert(db, record); err != nil {
			logger.Warn().Err(err).Msg("usage record failed")
		}
	}

	logger.Info().Msg("session ended")
	return scanner.Err()
}

func buildRegistries(cfg *config.Config, renderer *console.Renderer, logger *zerolog.Logger) command.Registries {
	messages := message.NewRegistry()
	renderer.Install(messages)

	requirements := requirement.NewRegistry()
	requirements.Register("admin", console.IsAdmin)
	requirements.Register("cooldown", requirement.Cooldown(
		time.Duration(cfg.CooldownSeconds)*time.Second,
		console.SenderKey,
	))
	requirements.Register("ratelimit", requirement.RateLimit(rate.Limit(1), 3, console.SenderKey))

	return command.Registries{
		Resolvers:    resolver.NewRegistry(),
		Requirements: requirements,
		Messages:     messages,
		Logger:       logger,
	}
}

func buildCommand(cfg *config.Config, renderer *console.Renderer, db *sql.DB, regs command.Registries) (*command.Command, error) {
	root, err := command.New(command.CommandSpec{Name: "chatsh", Syntax: cfg.Prefix}, regs)
	if err != nil {
		return nil, err
	}

	banFlags, err := flags.NewGroup(regs.Resolvers,
		flags.Spec{Short: "s", Long: "silent"},
		flags.Spec{Long: "days", Type: "int"},
	)
	if err != nil {
		return nil, err
	}

	subCommands := []command.SubCommandSpec{
		{
			Default: true,
			Name:    "help",
			Run: func(_ any, _ []any) error {
				renderer.Printf("commands: %s", strings.Join(root.Names(), ", "))
				return nil
			},
		},
		{
			Name: "ping",
			Run: func(_ any, _ []any) error {
				renderer.Printf("pong")
				return nil
			},
		},
		{
			Name:    "echo",
			Aliases: []string{"say"},
			Args: []command.ArgSpec{
				{Name: "text", Kind: command.KindJoined},
			},
			Run: func(_ any, args []any) error {
				renderer.Printf("%s", args[0].(string))
				return nil
			},
		},
		{
			Name: "roll",
			Args: []command.ArgSpec{
				{Name: "sides", Kind: command.KindPlain, Type: "int", Optional: true},
			},
			Requirements: []command.RequirementRef{{Key: "ratelimit"}},
			Run: func(_ any, args []any) error {
				sides := 6
				if args[0] != nil {
					sides = args[0].(int)
				}
				if sides < 1 {
					return fmt.Errorf("cannot roll a %d-sided die", sides)
				}
				renderer.Printf("rolled %d (d%d)", rand.Intn(sides)+1, sides)
				return nil
			},
		},
		{
			Name: "color",
			Args: []command.ArgSpec{
				{Name: "color", Kind: command.KindEnum, Enum: []string{"red", "green", "blue"}},
			},
			Run: func(_ any, args []any) error {
				renderer.Printf("color set to %s", args[0].(string))
				return nil
			},
		},
		{
			Name: "ban",
			Args: []command.ArgSpec{
				{Name: "user", Kind: command.KindPlain, Type: "string"},
				{Name: "reason", Kind: command.KindJoined},
				{Name: "options", Kind: command.KindFlags},
			},
			Flags:        banFlags,
			Sender:       func(sender any) (bool, message.Key) { return console.IsConsoleSender(sender), "" },
			Requirements: []command.RequirementRef{{Key: "admin"}, {Key: "cooldown"}},
			Run: func(_ any, args []any) error {
				user := args[0].(string)
				reason := args[1].(string)
				if reason == "" {
					reason = "no reason given"
				}
				opts := args[2].(*flags.Flags)

				days := opts.Int("days", 0)
				if days > 0 {
					renderer.Printf("banned %s for %d days: %s", user, days, reason)
				} else {
					renderer.Printf("banned %s permanently: %s", user, reason)
				}
				if !opts.Bool("silent") {
					renderer.Printf("announcement: %s was banned", user)
				}
				return nil
			},
		},
		{
			Name: "usage",
			Args: []command.ArgSpec{
				{Name: "count", Kind: command.KindPlain, Type: "int", Optional: true},
			},
			Run: func(_ any, args []any) error {
				count := 10
				if args[0] != nil {
					count = args[0].(int)
				}
				records, err := usagelog.Recent(db, count)
				if err != nil {
					return err
				}
				for _, r := range records {
					renderer.Printf("%s  %-8s %-10s %s (%dms)",
						r.At.Format("15:04:05"), r.Outcome, r.SubCommand, r.Sender, r.Duration.Milliseconds())
				}
				return nil
			},
		},
	}

	for _, spec := range subCommands {
		if _, err := root.Add(spec); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func currentUser() string {
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "anonymous"
}

func firstToken(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	return tokens[0]
}

func prompt(prefix string) {
	fmt.Print(prefix + " ")
}
