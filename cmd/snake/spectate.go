package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/spectate"
)

var spectateCmd = &cobra.Command{
	Use:   "spectate <addr>",
	Short: "Watch a game streamed with play --spectate",
	Long: `Connect to a game started with 'snake play --spectate' and watch it live.

The address may be host:port or a full ws:// URL.

Examples:
  snake spectate localhost:8080
  snake spectate ws://10.0.0.5:8080/ws`,
	Args: cobra.ExactArgs(1),
	RunE: runSpectate,
}

func runSpectate(_ *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := spectate.Dial(ctx, args[0])
	if err != nil {
		return err
	}
	defer client.Close()

	return tui.RunSpectator(client, "Spectating "+args[0], runtimeConfig())
}
