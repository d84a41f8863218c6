// Package main is the entry point for the Valoriza admin CLI.
// It manages admin accounts directly against the configured database,
// which is how the first admin of a fresh deployment gets created.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/valoriza-app/valoriza-server/internal/config"
	"github.com/valoriza-app/valoriza-server/internal/repository"
	"github.com/valoriza-app/valoriza-server/internal/repository/postgres"
	"github.com/valoriza-app/valoriza-server/internal/repository/sqlite"
	"github.com/valoriza-app/valoriza-server/internal/service"
)

// Version information (set at build time)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version":
		fmt.Printf("Valoriza Admin CLI\n")
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Build Time: %s\n", BuildTime)
		fmt.Printf("Git Commit: %s\n", GitCommit)

	case "create-admin":
		if err := runCreateAdmin(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "promote":
		if err := runPromote(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "help", "-h", "--help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runCreateAdmin(args []string) error {
	fs := flag.NewFlagSet("create-admin", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config file")
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password (four digits)")
	fs.Parse(args)

	if *email == "" || *password == "" {
		return fmt.Errorf("both -email and -password are required")
	}

	ctx := context.Background()
	repos, closeDB, err := openRepositories(ctx, *configPath)
	if err != nil {
		return err
	}
	defer closeDB()

	userService := service.NewUserService(repos.User, zerolog.Nop())
	user, err := userService.Create(ctx, service.CreateUserInput{
		Name:     *name,
		Email:    *email,
		Password: *password,
		Admin:    true,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Admin created: %s (%s)\n", user.Email, user.ID)
	return nil
}

func runPromote(args []string) error {
	fs := flag.NewFlagSet("promote", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config file")
	email := fs.String("email", "", "email of the user to promote")
	fs.Parse(args)

	if *email == "" {
		return fmt.Errorf("-email is required")
	}

	ctx := context.Background()
	repos, closeDB, err := openRepositories(ctx, *configPath)
	if err != nil {
		return err
	}
	defer closeDB()

	user, err := repos.User.GetByEmail(ctx, *email)
	if err != nil {
		return err
	}
	if user.Admin {
		fmt.Printf("%s is already an admin\n", user.Email)
		return nil
	}

	user.Admin = true
	if err := repos.User.Update(ctx, user); err != nil {
		return err
	}

	fmt.Printf("Promoted %s to admin\n", user.Email)
	return nil
}

func openRepositories(ctx context.Context, configPath string) (*repository.Repositories, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	logger := zerolog.Nop()

	switch cfg.Database.Driver {
	case "sqlite":
		db, err := sqlite.NewDB(ctx, sqlite.DefaultConfig(cfg.Database.Path), logger)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return &repository.Repositories{
			User:       sqlite.NewUserRepository(db),
			Tag:        sqlite.NewTagRepository(db),
			Compliment: sqlite.NewComplimentRepository(db),
		}, func() { db.Close() }, nil

	case "postgres":
		db, err := postgres.NewDB(ctx, cfg.Database, logger)
		if err != nil {
			return nil, nil, err
		}
		return &repository.Repositories{
			User:       postgres.NewUserRepository(db),
			Tag:        postgres.NewTagRepository(db),
			Compliment: postgres.NewComplimentRepository(db),
		}, func() { db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown database driver: %s", cfg.Database.Driver)
	}
}

func printUsage() {
	fmt.Println(`Valoriza Admin CLI

Usage:
  valoriza-admin <command> [arguments]

Commands:
  create-admin  Create a new admin user
  promote       Promote an existing user to admin
  version       Print version information
  help          Show this help message

Examples:
  valoriza-admin create-admin -email admin@example.com -password 1234 -name Admin
  valoriza-admin promote -email alice@example.com

Use "valoriza-admin <command> -h" for command flags.`)
}
