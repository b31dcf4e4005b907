package generators

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"math/rand"
)

// gifTrailer terminates every GIF stream.
const gifTrailer = 0x3b

// paddingChunk is a GIF comment extension; decoders skip it, so repeating it
// grows the file without changing the picture.
var paddingChunk = []byte{0x21, 0xfe, 0x07, 'm', 'o', 'c', 'k', 'g', 'i', 'f', 0x00}

type ImageOptions struct {
	Count int
	// Size bounds the number of padding chunks: each image carries 0..Size-1.
	Size int
}

func DefaultImageOptions() ImageOptions {
	return ImageOptions{Count: DefaultCount, Size: 10}
}

// Images returns Count+1 single-pixel GIFs of varying byte length.
func Images(rng *rand.Rand, opts ImageOptions) ([][]byte, error) {
	if err := checkCommon(rng, opts.Count); err != nil {
		return nil, err
	}
	if opts.Size < 1 {
		return nil, invalidf("image size must be >= 1, got %d", opts.Size)
	}
	header, footer, err := pixelFrame()
	if err != nil {
		return nil, err
	}

	out := make([][]byte, 0, opts.Count+1)
	for i := 0; i <= opts.Count; i++ {
		repeat := rng.Intn(opts.Size)
		img := make([]byte, 0, len(header)+repeat*len(paddingChunk)+len(footer))
		img = append(img, header...)
		for j := 0; j < repeat; j++ {
			img = append(img, paddingChunk...)
		}
		img = append(img, footer...)
		out = append(out, img)
	}
	return out, nil
}

// pixelFrame encodes a 1x1 GIF and splits it before its trailer.
func pixelFrame() (header, footer []byte, err error) {
	palette := color.Palette{color.Black, color.White}
	img := image.NewPaletted(image.Rect(0, 0, 1, 1), palette)
	img.SetColorIndex(0, 0, 1)

	var buf bytes.Buffer
	if err := gif.Encode(&buf, img, nil); err != nil {
		return nil, nil, fmt.Errorf("encode pixel: %w", err)
	}
	data := buf.Bytes()
	if len(data) == 0 || data[len(data)-1] != gifTrailer {
		return nil, nil, failedf("unexpected gif framing")
	}
	return data[:len(data)-1], data[len(data)-1:], nil
}
