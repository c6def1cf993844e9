package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"medicheck/cli/internal/api"
	"medicheck/cli/internal/config"
	"medicheck/cli/internal/log"
	"medicheck/cli/internal/service"
	"medicheck/cli/internal/session"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	a := &app{}
	verbose := false

	rootCmd := &cobra.Command{
		Use:   "medicheck",
		Short: "Client for the MediCheck cold-chain monitoring platform",
		Long: `medicheck talks to a MediCheck backend: pharmaceutical cold-chain
monitoring with AI quality prediction, anomaly detection and
counterfeit analysis.

Log in once and the session is restored on every subsequent run:

  medicheck login -u alice@example.com
  medicheck dashboard
  medicheck alerts --unread`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.bootstrap(cmd.Context(), verbose)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		loginCmd(a),
		logoutCmd(a),
		whoamiCmd(a),
		dashboardCmd(a),
		productsCmd(a),
		alertsCmd(a),
		aiCmd(a),
		chatCmd(a),
		adminCmd(a),
		watchCmd(a),
		serveCmd(a),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// app holds the wired-up client stack shared by all commands.
type app struct {
	cfg      *config.AppConfig
	log      zerolog.Logger
	sessions *session.Manager
	client   *api.Client

	users      *service.Users
	dashboard  *service.Dashboard
	monitoring *service.Monitoring
	alerts     *service.Alerts
	admin      *service.Admin
	ai         *service.AI
	chatModel  string
	chatLimit  int
}

// bootstrap loads configuration, builds the session manager and API
// client, and settles the session before any command runs. Nothing
// renders until restoration completes.
func (a *app) bootstrap(ctx context.Context, verbose bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log.New(cfg.Environment, verbose)

	a.sessions = session.NewManager(session.NewFileStore(cfg.State.Dir), a.log)
	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, a.sessions, a.log)
	a.client = client

	a.users = service.NewUsers(client)
	a.sessions.Bind(a.users)

	a.dashboard = service.NewDashboard(client)
	a.monitoring = service.NewMonitoring(client)
	a.alerts = service.NewAlerts(client)
	a.admin = service.NewAdmin(client)
	a.ai = service.NewAI(client)
	a.chatModel = cfg.Chat.Model
	a.chatLimit = cfg.Chat.MaxHistory

	a.sessions.Restore(ctx)
	return nil
}

// requireLogin gates commands that need an authenticated session.
func (a *app) requireLogin() error {
	if a.sessions.Current().State != session.StateLoggedIn {
		return fmt.Errorf("not logged in; run `medicheck login` first")
	}
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("medicheck %s (%s)\n", version, commit)
		},
	}
}
