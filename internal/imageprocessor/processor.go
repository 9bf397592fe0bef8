package imageprocessor

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

// Processor shrinks uploaded images so neither side exceeds maxDimension.
type Processor struct {
	quality      int
	maxDimension int
}

func NewProcessor(quality, maxDimension int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Processor{
		quality:      quality,
		maxDimension: maxDimension,
	}
}

// encodable lists the MIME types we re-encode. GIF and WebP pass through
// untouched: animation would be lost and there is no WebP encoder.
var encodable = map[string]imaging.Format{
	"image/jpeg": imaging.JPEG,
	"image/png":  imaging.PNG,
}

// Fit returns data unchanged when it already fits (or cannot be re-encoded),
// otherwise a downscaled copy in the same format. The bool reports a resize.
func (p *Processor) Fit(data []byte, mimeType string) ([]byte, bool, error) {
	if p.maxDimension <= 0 {
		return data, false, nil
	}

	width, height, err := GetImageDimensions(bytes.NewReader(data))
	if err != nil {
		return nil, false, err
	}
	if width <= p.maxDimension && height <= p.maxDimension {
		return data, false, nil
	}

	format, ok := encodable[mimeType]
	if !ok {
		return data, false, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode image: %w", err)
	}

	resized := imaging.Fit(img, p.maxDimension, p.maxDimension, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format, imaging.JPEGQuality(p.quality)); err != nil {
		return nil, false, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), true, nil
}

// GetImageDimensions reads only the header of the image.
func GetImageDimensions(reader io.Reader) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(reader)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return 0, 0, ErrUnsupportedFormat
		}
		return 0, 0, fmt.Errorf("failed to decode image header: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}
