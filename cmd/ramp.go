package cmd

import (
	"fmt"
	"image"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/golang/freetype/truetype"
	"github.com/spf13/cobra"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var (
	rampFontPath string
	rampFontSize float64
)

// rampCmd re-measures the printable-ASCII density table against a chosen
// font. The shipped ramp.Density constant was produced this way; the tool
// exists so the table can be regenerated rather than recomputed at runtime.
var rampCmd = &cobra.Command{
	Use:   "ramp",
	Short: "Measure glyph ink densities for a TTF font and print a ramp constant",
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(rampFontPath)
		if err != nil {
			color.Red("❌ Failed to read font: %v", err)
			os.Exit(1)
		}
		fnt, err := truetype.Parse(data)
		if err != nil {
			color.Red("❌ Failed to parse font: %v", err)
			os.Exit(1)
		}
		face := truetype.NewFace(fnt, &truetype.Options{Size: rampFontSize, DPI: 72})
		defer face.Close()

		type weighted struct {
			r   rune
			ink int
		}
		glyphs := make([]weighted, 0, '~'-' '+1)
		for r := rune(' '); r <= '~'; r++ {
			glyphs = append(glyphs, weighted{r: r, ink: measureInk(face, r)})
		}
		sort.SliceStable(glyphs, func(i, j int) bool { return glyphs[i].ink > glyphs[j].ink })

		out := make([]rune, len(glyphs))
		for i, g := range glyphs {
			out[i] = g.r
		}
		fmt.Printf("Density = Ramp(%q)\n", string(out))
	},
}

// measureInk rasterizes one glyph into a fixed cell and sums its coverage.
func measureInk(face font.Face, r rune) int {
	const cell = 32
	img := image.NewGray(image.Rect(0, 0, cell, cell))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(4, cell-8),
	}
	d.DrawString(string(r))

	ink := 0
	for _, v := range img.Pix {
		ink += int(v)
	}
	return ink
}

func init() {
	rampCmd.Flags().StringVarP(&rampFontPath, "font", "f", "", "path to a TTF font file")
	rampCmd.Flags().Float64Var(&rampFontSize, "size", 16, "font size in points")
	rampCmd.MarkFlagRequired("font")
	rootCmd.AddCommand(rampCmd)
}
