// Command xbrzscale upscales pixel art images with the xBRZ filter.
//
// It reads PNG, GIF, JPEG, BMP, TIFF, and WebP input and always writes
// PNG output:
//
//	xbrzscale -factor 4 sprite.png
//	xbrzscale -factor 3 -output big.png -jobs 8 tiles.bmp
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/xbrz"
)

func main() {
	var (
		output  = flag.String("output", "", "output file (default <input>_<factor>x.png)")
		factor  = flag.Int("factor", 2, "scale factor (2..6)")
		jobs    = flag.Int("jobs", 1, "worker goroutines, 0 = all CPUs")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <input>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	input := flag.Arg(0)

	if *verbose {
		xbrz.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(input, *output, *factor, *jobs); err != nil {
		log.Fatalf("xbrzscale: %v", err)
	}
}

func run(input, output string, factor, jobs int) error {
	if output == "" {
		ext := filepath.Ext(input)
		output = fmt.Sprintf("%s_%dx.png", strings.TrimSuffix(input, ext), factor)
	}

	src, format, err := decode(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}
	b := src.Bounds()

	start := time.Now()
	dst, err := xbrz.ScaleImage(src, factor, xbrz.WithParallelism(jobs))
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := encode(output, dst); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	info, err := os.Stat(output)
	if err != nil {
		return err
	}
	log.Printf("%s (%s %dx%d) -> %s (%dx%d, %s) in %s",
		input, format, b.Dx(), b.Dy(),
		output, b.Dx()*factor, b.Dy()*factor,
		humanize.Bytes(uint64(info.Size())), elapsed.Round(time.Millisecond))
	return nil
}

func decode(path string) (image.Image, string, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, "", err
	}
	defer func() {
		_ = f.Close()
	}()

	return image.Decode(f)
}

func encode(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return err
	}

	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
