//go:build ignore

// Sprite generator for trying spritesize by hand.
//
// Usage: go run testdata/generate_test_image.go <dir>
//
// Writes 001.png (256x256), 004.png (64x200) and a corrupt 003.png into dir,
// leaving 002.png missing, so a single run shows every outcome.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: generate_test_image <dir>")
		os.Exit(2)
	}
	dir := os.Args[1]

	if err := os.MkdirAll(dir, 0o755); err != nil {
		panic(err)
	}

	writeSprite(filepath.Join(dir, "001.png"), 256, 256)
	writeSprite(filepath.Join(dir, "004.png"), 64, 200)

	if err := os.WriteFile(filepath.Join(dir, "003.png"), []byte("not a png\n"), 0o644); err != nil {
		panic(err)
	}

	fmt.Printf("Test sprites created in %s\n", dir)
}

// writeSprite fills a checkerboard of 16px blocks.
func writeSprite(path string, width, height int) {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	dark := color.NRGBA{R: 40, G: 30, B: 60, A: 255}
	light := color.NRGBA{R: 220, G: 180, B: 90, A: 255}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x/16+y/16)%2 == 0 {
				img.Set(x, y, dark)
			} else {
				img.Set(x, y, light)
			}
		}
	}

	file, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		panic(err)
	}
}
