package main

import (
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironsheep/chart-gridlines/internal/gridlines"
	"github.com/ironsheep/chart-gridlines/internal/imaging"
	"github.com/ironsheep/chart-gridlines/internal/server"
)

// chartFlags holds the axis configuration shared by render and preview.
type chartFlags struct {
	xRange []float64
	yRange []float64
	hLines int
	vLines int
}

func (f *chartFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64SliceVar(&f.xRange, "x-range", []float64{120, 1500}, "X axis range as start,end")
	cmd.Flags().Float64SliceVar(&f.yRange, "y-range", []float64{10, 360}, "Y axis range as start,end")
	cmd.Flags().IntVar(&f.hLines, "h-lines", 5, "Number of horizontal gridlines (at least 3)")
	cmd.Flags().IntVar(&f.vLines, "v-lines", 5, "Number of vertical gridlines (at least 3)")
}

func (f *chartFlags) validate() error {
	if len(f.xRange) != 2 {
		return fmt.Errorf("--x-range needs exactly 2 values, got %d", len(f.xRange))
	}
	if len(f.yRange) != 2 {
		return fmt.Errorf("--y-range needs exactly 2 values, got %d", len(f.yRange))
	}
	return nil
}

func (f *chartFlags) chart() *gridlines.Chart {
	return gridlines.NewChart().
		XRange(f.xRange[0], f.xRange[1]).
		YRange(f.yRange[0], f.yRange[1]).
		HLines(f.hLines).
		VLines(f.vLines)
}

func (f *chartFlags) generator(o gridlines.Orientation) *gridlines.Generator {
	n := f.hLines
	if o == gridlines.Vertical {
		n = f.vLines
	}
	return gridlines.NewGenerator(o).
		XRange(f.xRange[0], f.xRange[1]).
		YRange(f.yRange[0], f.yRange[1]).
		Lines(n)
}

func newRootCmd(debug bool) *cobra.Command {
	root := &cobra.Command{
		Use:   "gridlines",
		Short: "Generate evenly spaced chart gridlines as SVG",
		Long: `gridlines computes evenly spaced horizontal and vertical gridline
coordinates for a chart background and renders them as SVG path elements.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRenderCmd(debug),
		newCoordsCmd(),
		newPreviewCmd(debug),
		newServeCmd(debug),
		newVersionCmd(),
	)
	return root
}

func newRenderCmd(debug bool) *cobra.Command {
	var (
		flags      chartFlags
		axis       string
		output     string
		combined   bool
		standalone bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render gridlines as SVG to a file or stdout",
		Long: `Render horizontal and/or vertical gridlines.

With --axis both and an --output path, the horizontal and vertical documents
are written to <name>.horizontal.svg and <name>.vertical.svg. Use --combined
to put every line in a single document instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.validate(); err != nil {
				return err
			}
			if debug {
				log.Printf("render axis=%s x=%v y=%v h=%d v=%d output=%q",
					axis, flags.xRange, flags.yRange, flags.hLines, flags.vLines, output)
			}

			if combined && axis != "both" {
				return fmt.Errorf("--combined requires --axis both, got %s", axis)
			}

			var doc *gridlines.Document
			var err error
			switch axis {
			case "horizontal":
				doc, err = flags.generator(gridlines.Horizontal).Generate()
			case "vertical":
				doc, err = flags.generator(gridlines.Vertical).Generate()
			case "both":
				if !combined && !standalone {
					return writeChart(flags.chart(), output, cmd.OutOrStdout())
				}
				doc, err = flags.chart().Document()
			default:
				return fmt.Errorf("invalid axis: %s (must be horizontal, vertical, or both)", axis)
			}
			if err != nil {
				return err
			}

			if standalone {
				return writeStandalone(doc, output, cmd.OutOrStdout())
			}
			return sinkFor(output, cmd.OutOrStdout()).Write(doc)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&axis, "axis", "both", "Gridlines to render: horizontal, vertical, or both")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&combined, "combined", false, "Render both axes into a single document (requires --axis both)")
	cmd.Flags().BoolVar(&standalone, "standalone", false, "Emit a standalone SVG file with XML prolog and canvas size")
	return cmd
}

// sinkFor mirrors gridlines.SinkFor but lets tests capture stdout.
func sinkFor(path string, stdout io.Writer) gridlines.Sink {
	if path == "" {
		return gridlines.StreamSink{W: stdout}
	}
	return gridlines.FileSink{Path: path}
}

func writeChart(c *gridlines.Chart, output string, stdout io.Writer) error {
	if output == "" {
		return c.WriteSink(gridlines.StreamSink{W: stdout})
	}
	return c.Write(output)
}

func writeStandalone(doc *gridlines.Document, output string, stdout io.Writer) error {
	if output == "" {
		if err := doc.WriteStandalone(stdout, 0, 0); err != nil {
			return &gridlines.OutputStreamError{Err: err}
		}
		return nil
	}

	f, err := os.Create(output)
	if err != nil {
		return &gridlines.DestinationError{Path: output, Err: err}
	}
	if err := doc.WriteStandalone(f, 0, 0); err != nil {
		f.Close()
		return &gridlines.DestinationError{Path: output, Err: err}
	}
	if err := f.Close(); err != nil {
		return &gridlines.DestinationError{Path: output, Err: err}
	}
	return nil
}

func newCoordsCmd() *cobra.Command {
	var (
		start, end float64
		lines      int
	)

	cmd := &cobra.Command{
		Use:   "coords",
		Short: "Print evenly spaced coordinates along one axis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			coords, err := gridlines.Coordinates(gridlines.Range(start, end), lines)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, c := range coords {
				if _, err := fmt.Fprintln(w, strconv.FormatFloat(c, 'f', -1, 64)); err != nil {
					return &gridlines.OutputStreamError{Err: err}
				}
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&start, "start", 10, "First coordinate")
	cmd.Flags().Float64Var(&end, "end", 360, "Last coordinate")
	cmd.Flags().IntVar(&lines, "lines", 5, "Number of gridlines (at least 3)")
	return cmd
}

func newPreviewCmd(debug bool) *cobra.Command {
	var (
		flags      chartFlags
		width      int
		height     int
		background string
		imagePath  string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Rasterize gridlines to an image file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.validate(); err != nil {
				return err
			}
			if output == "" {
				return fmt.Errorf("--output is required")
			}

			doc, err := flags.chart().Document()
			if err != nil {
				return err
			}

			var img image.Image
			if imagePath != "" {
				bg, err := imaging.NewImageCache().Load(imagePath)
				if err != nil {
					return err
				}
				if img, err = imaging.Overlay(bg, doc); err != nil {
					return err
				}
			} else {
				bg, err := imaging.ParseBackground(background)
				if err != nil {
					return err
				}
				if img, err = imaging.Rasterize(doc, width, height, bg); err != nil {
					return err
				}
			}

			if debug {
				log.Printf("preview %dx%d lines=%d -> %s", img.Bounds().Dx(), img.Bounds().Dy(), doc.Len(), output)
			}
			return imaging.SavePreview(img, output)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&width, "width", 0, "Canvas width in pixels (default: fit the gridlines)")
	cmd.Flags().IntVar(&height, "height", 0, "Canvas height in pixels (default: fit the gridlines)")
	cmd.Flags().StringVar(&background, "background", "#FFFFFF", "Canvas color as #RRGGBB or #RRGGBBAA")
	cmd.Flags().StringVar(&imagePath, "image", "", "Draw the gridlines over this image instead of a blank canvas")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output image path; format follows the extension")
	return cmd
}

func newServeCmd(debug bool) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server.Version = Version
			if debug {
				log.Printf("MCP server starting")
			}
			return server.New(server.WithDebug(debug)).Serve(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "gridlines %s\n", Version)
			fmt.Fprintf(w, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
		},
	}
}
