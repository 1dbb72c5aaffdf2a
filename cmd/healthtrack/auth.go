// ABOUTME: CLI commands for user accounts and sessions.
// ABOUTME: signup/login persist a session record; logout/whoami manage it.
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/harperreed/healthtrack/internal/session"
	"github.com/harperreed/healthtrack/internal/storage"
	"github.com/spf13/cobra"
)

var (
	authPassword string
	authName     string
)

var signupCmd = &cobra.Command{
	Use:   "signup <username>",
	Short: "Create an account",
	Long: `Create an account and log in. The password is stored as a hash;
the plaintext never touches disk.

Examples:
  healthtrack signup alice --password s3cret --name "Alice"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]
		if authPassword == "" {
			return fmt.Errorf("--password is required")
		}

		id, err := repo.CreateUser(username, authPassword, authName)
		if err != nil {
			if errors.Is(err, storage.ErrUsernameTaken) {
				return fmt.Errorf("username %q is already taken", username)
			}
			return fmt.Errorf("failed to create account: %w", err)
		}

		if err := startSession(id, username, authName); err != nil {
			return err
		}

		color.Green("✓ Account created")
		fmt.Printf("  Logged in as %s\n", username)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Log in to an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]
		if authPassword == "" {
			return fmt.Errorf("--password is required")
		}

		user, err := repo.AuthenticateUser(username, authPassword)
		if err != nil {
			if errors.Is(err, storage.ErrInvalidCredentials) {
				return fmt.Errorf("invalid username or password")
			}
			return fmt.Errorf("failed to log in: %w", err)
		}

		if err := startSession(user.ID, user.Username, user.DisplayName); err != nil {
			return err
		}

		color.Green("✓ Logged in as %s", user.Username)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sessions.ClearCurrentUser(); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		u, ok, err := sessions.GetCurrentUser()
		if err != nil {
			return fmt.Errorf("failed to read session: %w", err)
		}
		if !ok {
			fmt.Println("Not logged in.")
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s", u.Username)
		if u.DisplayName != "" {
			fmt.Printf(" (%s)", u.DisplayName)
		}
		fmt.Printf(" %s\n", faint.Sprintf("since %s", u.LoggedInAt.Format("2006-01-02 15:04")))
		return nil
	},
}

func startSession(userID int64, username, displayName string) error {
	err := sessions.SetCurrentUser(&session.CurrentUser{
		UserID:      userID,
		Username:    username,
		DisplayName: displayName,
		Token:       uuid.NewString(),
		LoggedInAt:  time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func init() {
	signupCmd.Flags().StringVar(&authPassword, "password", "", "account password")
	signupCmd.Flags().StringVar(&authName, "name", "", "display name")
	loginCmd.Flags().StringVar(&authPassword, "password", "", "account password")
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
