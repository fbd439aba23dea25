package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/asciiforge/asciiforge/internal/engine"
	"github.com/asciiforge/asciiforge/internal/render"
	"github.com/asciiforge/asciiforge/internal/store"
)

var (
	renderColumns    string
	renderBrightness string
	renderContrast   string
	renderStrategy   string
	renderSaveDir    string
)

var renderCmd = &cobra.Command{
	Use:   "render [image files...]",
	Short: "Render one or more images as ASCII art",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		only := -1
		if renderStrategy != "all" {
			s, err := render.ParseStrategy(renderStrategy)
			if err != nil {
				color.Red("❌ %v", err)
				os.Exit(1)
			}
			for i, o := range render.Order {
				if o == s {
					only = i
				}
			}
		}

		var st *store.Store
		if renderSaveDir != "" {
			if err := os.MkdirAll(renderSaveDir, 0o755); err != nil {
				color.Red("❌ Failed to create save dir: %v", err)
				os.Exit(1)
			}
			st = store.New(renderSaveDir)
		}
		eng := engine.New(st)

		opts := engine.ParseOptions(columnsOrTerminalWidth(), renderBrightness, renderContrast)

		var bar *progressbar.ProgressBar
		if len(args) > 1 {
			bar = progressbar.NewOptions(len(args),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetDescription("rendering"),
			)
		}

		failed := false
		for _, path := range args {
			if err := renderOne(eng, path, opts, only); err != nil {
				color.Red("❌ %s: %v", path, err)
				failed = true
			}
			if bar != nil {
				bar.Add(1)
			}
		}
		if bar != nil {
			fmt.Fprintln(os.Stderr)
		}
		if failed {
			os.Exit(1)
		}
	},
}

func renderOne(eng *engine.Engine, path string, opts engine.Options, only int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	res, err := eng.Generate(context.Background(), engine.Source{Data: data, Filename: path}, opts)
	if err != nil {
		return err
	}

	header := color.New(color.FgCyan)
	header.Printf("📸 %s — %d columns, brightness %d%%, contrast %d%%\n",
		path, res.Columns, res.Brightness, res.Contrast)
	if res.FileName != "" {
		header.Printf("💾 Saved normalized copy as %s\n", res.FileName)
	}

	for i, art := range res.Arts {
		if only >= 0 && i != only {
			continue
		}
		if only < 0 {
			color.New(color.FgYellow).Printf("── %s ──\n", render.Order[i])
		}
		fmt.Print(art)
	}
	return nil
}

// columnsOrTerminalWidth falls back to the current terminal width when the
// user did not pick a column count.
func columnsOrTerminalWidth() string {
	if renderColumns != "" {
		return renderColumns
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 2 {
		return strconv.Itoa(w - 2)
	}
	return ""
}

func init() {
	renderCmd.Flags().StringVarP(&renderColumns, "columns", "c", "", "output column count (default: terminal width, else 90; max 300)")
	renderCmd.Flags().StringVarP(&renderBrightness, "brightness", "b", "100", "brightness percentage")
	renderCmd.Flags().StringVarP(&renderContrast, "contrast", "k", "100", "contrast percentage")
	renderCmd.Flags().StringVarP(&renderStrategy, "strategy", "s", "all", "rendering strategy: all, simple, blocks, dense or density")
	renderCmd.Flags().StringVar(&renderSaveDir, "save-dir", "", "persist the normalized image into this directory")
	rootCmd.AddCommand(renderCmd)
}
