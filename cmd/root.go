package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hotseat",
	Short: "HotSeat coordinates video meetings: signaling rooms, WebRTC relay and meeting phases.",
	Run: func(cmd *cobra.Command, args []string) {
		runApp(cmd.Context())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
