package main

import (
	"fmt"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"strings"

	"github.com/lemapp09/SVGtoUXML/svgcodec"
	"github.com/lemapp09/SVGtoUXML/svgicon"
	"github.com/lemapp09/SVGtoUXML/svgraster"
	"github.com/tdewolff/argp"
	"golang.org/x/image/colornames"
)

type Convert struct {
	Strict     bool   `desc:"Fail on malformed numeric values"`
	Verbose    bool   `short:"v" desc:"Report unresolved use references"`
	Bake       bool   `desc:"Apply the transforms to the encoded commands"`
	PNG        string `name:"png" desc:"Render a PNG preview to this file"`
	Size       int    `short:"s" default:"512" desc:"Preview size in pixels"`
	Background string `short:"b" default:"white" desc:"Preview background, as a color name, #RRGGBB(AA) or none"`
	Input      string `index:"0" desc:"Input SVG file"`
}

func main() {
	root := argp.NewCmd(&Convert{}, "Convert SVG files to normalized shape lists")
	root.Parse()
	root.PrintHelp()
}

// parseBackground accepts CSS color names on top of the hex notations.
func parseBackground(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" || s == "transparent" {
		return nil, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if c, ok := svgicon.ParseColor(s); ok {
		return c, nil
	}
	return nil, fmt.Errorf("invalid background color %q", s)
}

func (cmd *Convert) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	level := slog.LevelWarn
	if cmd.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	drawing, err := svgicon.ReadDrawing(cmd.Input, svgicon.ParseOptions{
		Strict:  cmd.Strict,
		Verbose: cmd.Verbose,
		Sink:    svgicon.NewSlogSink(logger),
	})
	if err != nil {
		return err
	}
	logger.Debug("parsed", "file", cmd.Input, "shapes", len(drawing.Shapes), "width", drawing.Width, "height", drawing.Height)

	shapes := drawing.Shapes
	if cmd.Bake {
		shapes = make([]svgicon.Shape, len(drawing.Shapes))
		for i, s := range drawing.Shapes {
			shapes[i] = s.Baked()
		}
	}
	fmt.Println(svgcodec.Encode(shapes))

	if cmd.PNG == "" {
		return nil
	}
	if cmd.Size <= 0 {
		return fmt.Errorf("invalid preview size %d", cmd.Size)
	}
	background, err := parseBackground(cmd.Background)
	if err != nil {
		return err
	}
	img := svgraster.RasterShapesToImage(drawing.Shapes, svgraster.Options{Width: cmd.Size, Height: cmd.Size, Background: background})
	f, err := os.Create(cmd.PNG)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Debug("preview written", "file", cmd.PNG)
	return nil
}
