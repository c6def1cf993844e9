package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"medicheck/cli/internal/models"
	"medicheck/cli/internal/security"
	"medicheck/cli/internal/session"
)

func loginCmd(a *app) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the MediCheck backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				fmt.Print("Username (email): ")
				if _, err := fmt.Scanln(&username); err != nil {
					return fmt.Errorf("read username: %w", err)
				}
			}
			if password == "" {
				fmt.Print("Password: ")
				raw, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Println()
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = string(raw)
			}

			user, err := a.sessions.Login(cmd.Context(), strings.TrimSpace(username), password)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			fmt.Printf("Logged in as %s <%s>\n", user.Username, user.Email)
			if user.IsAdmin() {
				fmt.Println("Admin account: `medicheck admin` commands are available.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	return cmd
}

func logoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		Run: func(cmd *cobra.Command, args []string) {
			a.sessions.Logout()
			fmt.Println("Logged out.")
		},
	}
}

func whoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := a.sessions.Current()
			if snap.State != session.StateLoggedIn {
				fmt.Println("Not logged in.")
				return nil
			}

			printUser(*snap.User)

			if info, err := security.InspectToken(snap.Token); err == nil && !info.ExpiresAt.IsZero() {
				if info.Expired(time.Now()) {
					fmt.Println("Token:    expired (next request will fail; log in again)")
				} else {
					fmt.Printf("Token:    expires %s\n", info.ExpiresAt.Local().Format(time.RFC1123))
				}
			}
			return nil
		},
	}
}

func printUser(user models.User) {
	fmt.Printf("User:     %s <%s>\n", user.Username, user.Email)
	fmt.Printf("Role:     %s\n", user.UserType)
	if user.CompanyName != "" {
		fmt.Printf("Company:  %s\n", user.CompanyName)
	}
}
