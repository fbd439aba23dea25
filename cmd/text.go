package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asciiforge/asciiforge/internal/textart"
)

var textMultiline bool

var textCmd = &cobra.Command{
	Use:   "text [words...]",
	Short: "Render text as a banner",
	Run: func(cmd *cobra.Command, args []string) {
		sep := " "
		if textMultiline {
			sep = "\n"
		}
		fmt.Println(textart.Render(strings.Join(args, sep)))
	},
}

func init() {
	textCmd.Flags().BoolVarP(&textMultiline, "multiline", "m", false, "treat each argument as its own line")
	rootCmd.AddCommand(textCmd)
}
