// Package xbrz upscales pixel-art images by an integer factor using the
// xBRZ algorithm (version 1.8 semantics).
//
// # Overview
//
// xBRZ infers local edge geometry from a small pixel neighborhood and
// synthesizes sub-pixel output that follows diagonal edges instead of
// producing blocks (nearest neighbor) or blur (bilinear). It is designed
// for low-resolution pixel art: sprites, tiles, icons.
//
// # Quick Start
//
//	import "github.com/gogpu/xbrz"
//
//	// src is a flat RGBA8 buffer, 4 bytes per pixel, row-major.
//	dst, err := xbrz.Scale(src, width, height, 4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// dst is (width*4) x (height*4), same layout.
//
// Or with the image package:
//
//	img, _ := png.Decode(f)
//	big, err := xbrz.ScaleImage(img, 3)
//
// # Scale Factors
//
// Factors 2 through 6 are supported. Each source pixel expands into an
// NxN block of destination pixels; blending only ever mixes a sub-pixel
// from at most three source pixels, so the result stays sharp.
//
// # Color Distance Table
//
// Pixel similarity is judged with a precomputed perceptual distance table
// (luma-weighted YCbCr, Rec.2020 primaries). The default build quantizes
// channel differences to 5 bits (32^3 float32 entries, 128 KiB). Building
// with the "xbrzfulllut" tag selects the full 8-bit table (256^3 entries,
// 64 MiB) for maximal accuracy. The table is built once, on first use.
//
// # Concurrency
//
// Scale is safe for concurrent use. By default the image is processed on
// a single goroutine; use WithParallelism to split the work into row
// stripes across multiple goroutines. Output is byte-identical regardless
// of the worker count.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Scale, ScaleImage, Pixmap, Config
//   - internal/colordist: perceptual distance lookup table
//   - internal/kernel: sliding 4x4 source window with edge clamping
//   - internal/blend: per-corner blend classification signature
//   - internal/scaler: edge classifier, blend catalogue, output synthesis
package xbrz
