// Command setup provisions the application interactively: it creates the
// database, applies the schema migrations, seeds an admin user, and writes
// a .env file the server reads on startup.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/pingstack/pingstack-go/internal/config"
	"github.com/pingstack/pingstack-go/internal/crypto"
	"github.com/pingstack/pingstack-go/internal/migrations"
	"github.com/pingstack/pingstack-go/internal/model"
	"github.com/pingstack/pingstack-go/internal/repository"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

func main() {
	fmt.Println("========================================")
	fmt.Println("  Fullstack Template - Setup Wizard")
	fmt.Println("========================================")
	fmt.Println()

	if err := run(bufio.NewReader(os.Stdin), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "setup failed:", err)
		os.Exit(1)
	}
}

func run(reader *bufio.Reader, w io.Writer) error {
	fmt.Fprintln(w, "Step 1: MySQL Connection")
	dbUser, err := ask(reader, w, `MySQL username (default "root")`, "root")
	if err != nil {
		return err
	}
	dbPassword, err := askPassword(w, "MySQL password: ")
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "\nStep 2: Database Settings")
	dbName, err := ask(reader, w, `Database name to create (default "fullstack_template")`, "fullstack_template")
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "\nStep 3: Create Admin User")
	adminUsername, err := ask(reader, w, `Admin username (default "admin")`, "admin")
	if err != nil {
		return err
	}
	adminEmail, err := ask(reader, w, `Admin email (default "admin@example.com")`, "admin@example.com")
	if err != nil {
		return err
	}
	adminPassword, err := askPassword(w, "Admin password: ")
	if err != nil {
		return err
	}
	if adminPassword == "" {
		return errors.New("admin password must not be empty")
	}

	cfg := config.Config{
		DBHost:     envOr("DB_HOST", "localhost"),
		DBPort:     envOr("DB_PORT", "3306"),
		DBUser:     dbUser,
		DBPassword: dbPassword,
		DBName:     dbName,
	}

	ctx := context.Background()

	fmt.Fprintln(w, "\n→ Connecting to MySQL...")
	if err := createDatabase(ctx, cfg); err != nil {
		return fmt.Errorf("creating database: %w", err)
	}
	fmt.Fprintln(w, "✓ Database created:", dbName)

	db, err := repository.NewDB(cfg.DSN())
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", dbName, err)
	}
	defer db.Close()

	fmt.Fprintln(w, "→ Applying schema migrations...")
	if err := migrations.Up(ctx, db); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	fmt.Fprintln(w, "✓ Users table ready")

	fmt.Fprintln(w, "→ Creating admin user...")
	if err := seedAdmin(ctx, db, adminUsername, adminEmail, adminPassword); err != nil {
		return fmt.Errorf("seeding admin user: %w", err)
	}
	fmt.Fprintln(w, "✓ Admin user ready:", adminUsername)

	if err := writeEnvFile(cfg); err != nil {
		return fmt.Errorf("writing .env: %w", err)
	}
	fmt.Fprintln(w, "✓ Created .env file")

	fmt.Fprintln(w, "\n========================================")
	fmt.Fprintln(w, "  Setup Complete!")
	fmt.Fprintln(w, "========================================")
	fmt.Fprintf(w, "\nLogin with username %q and the password you chose.\n", adminUsername)
	return nil
}

// createDatabase connects without a database selected and creates the target
// schema if it does not exist yet.
func createDatabase(ctx context.Context, cfg config.Config) error {
	db, err := sql.Open("mysql", cfg.ServerDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, "CREATE DATABASE IF NOT EXISTS "+quoteIdentifier(cfg.DBName))
	return err
}

// seedAdmin inserts the admin user, ignoring a duplicate from a previous run.
func seedAdmin(ctx context.Context, db *sql.DB, username, email, password string) error {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}

	repo := repository.NewUserRepository(db)
	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	err = repo.Create(ctx, user)
	if errors.Is(err, repository.ErrDuplicateUser) {
		fmt.Println("  (user already exists, keeping existing record)")
		return nil
	}
	return err
}

func writeEnvFile(cfg config.Config) error {
	secret, err := crypto.GenerateSecret(48)
	if err != nil {
		return err
	}

	content := fmt.Sprintf(`# Server Configuration
PORT=5000
ENV=development

# Database Configuration
DB_HOST=%s
DB_USER=%s
DB_PASSWORD=%s
DB_NAME=%s
DB_PORT=%s

# JWT
JWT_SECRET=%s
JWT_EXPIRES_IN=24h
`, cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, secret)

	return os.WriteFile(".env", []byte(content), 0o600)
}

// quoteIdentifier wraps a MySQL identifier in backticks. Backticks inside the
// name are doubled, which is the only escaping MySQL identifiers need.
func quoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func ask(reader *bufio.Reader, w io.Writer, prompt, fallback string) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			line = strings.TrimSpace(line)
		} else {
			return "", err
		}
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback, nil
	}
	return line, nil
}

// askPassword reads a password from the terminal without echo.
func askPassword(w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
