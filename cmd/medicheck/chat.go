package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"medicheck/cli/internal/service"
)

func chatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to the MediCheck assistant",
		Long: `Interactive chat with the platform's AI assistant for counterfeit
checks, side-effect questions and platform help. End with Ctrl-D or
"exit".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}

			chat := service.NewChat(a.client, a.chatModel, a.chatLimit)
			a.log.Debug().Str("conversation_id", chat.ConversationID()).Msg("chat started")

			fmt.Println("MediCheck assistant. Ask about medicines, batches or the platform.")
			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					fmt.Println()
					return scanner.Err()
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					return nil
				}

				reply, err := chat.Send(cmd.Context(), line)
				if err != nil {
					fmt.Fprintf(os.Stderr, "assistant unavailable: %s\n", err)
					continue
				}
				fmt.Println(reply.Content)
			}
		},
	}
}
