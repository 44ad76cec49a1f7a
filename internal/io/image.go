package ioutils

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// jpegQuality is used for every re-encoded cover.
const jpegQuality = 90

// CoverOptions controls how PrepareCover transforms an image.
type CoverOptions struct {
	// MaxSize bounds width and height in pixels. Zero disables resizing.
	MaxSize int

	// ToJPEG re-encodes the image as JPEG even when it is not resized.
	ToJPEG bool
}

// ImageService provides image processing operations for cover art.
//
// Example usage:
//
//	svc := NewImageService()
//	cover, err := svc.PrepareCover(ctx, imageData, CoverOptions{MaxSize: 1000, ToJPEG: true})
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// PrepareCover resizes and/or converts a cover image.
//
// The aspect ratio is preserved and images already within MaxSize are not
// scaled. When neither resizing nor conversion is needed the input is
// returned unchanged. Any output that was processed is JPEG-encoded.
//
// The Catmull-Rom algorithm is used for scaling.
//
// Example:
//
//	// A 1500x1000 PNG becomes a 1000x666 JPEG
//	cover, err := svc.PrepareCover(ctx, pngData, CoverOptions{MaxSize: 1000})
func (s *ImageService) PrepareCover(ctx context.Context, data []byte, opts CoverOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width, height := fitWithin(bounds.Dx(), bounds.Dy(), opts.MaxSize)
	resize := width != bounds.Dx() || height != bounds.Dy()

	if !resize && (!opts.ToJPEG || format == "jpeg") {
		return data, nil
	}

	if resize {
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// fitWithin scales width x height down to fit a maxSize square.
func fitWithin(width, height, maxSize int) (int, int) {
	if maxSize <= 0 || (width <= maxSize && height <= maxSize) {
		return width, height
	}
	if width >= height {
		return maxSize, max(1, height*maxSize/width)
	}
	return max(1, width*maxSize/height), maxSize
}
