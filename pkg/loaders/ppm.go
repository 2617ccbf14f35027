package loaders

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
)

// Limits that guard allocations against corrupt headers
const (
	maxPPMDimension = 1 << 15
	maxPPMPixels    = 1 << 26
)

func init() {
	image.RegisterFormat("ppm", "P6", DecodePPM, DecodePPMConfig)
}

type ppmHeader struct {
	width, height, maxVal int
}

// DecodePPM reads a binary (P6) PPM image. Header comments starting with '#'
// are skipped. Samples wider than 8 bits are scaled down to 8.
func DecodePPM(r io.Reader) (image.Image, error) {
	br := bufio.NewReader(r)
	h, err := readPPMHeader(br)
	if err != nil {
		return nil, err
	}

	bytesPerSample := 1
	if h.maxVal > 255 {
		bytesPerSample = 2
	}

	row := make([]byte, 3*h.width*bytesPerSample)
	img := image.NewRGBA(image.Rect(0, 0, h.width, h.height))
	for y := 0; y < h.height; y++ {
		if _, err := io.ReadFull(br, row); err != nil {
			return nil, fmt.Errorf("loaders: read PPM row %d: %w", y, err)
		}
		for x := 0; x < h.width; x++ {
			i := img.PixOffset(x, y)
			for c := 0; c < 3; c++ {
				var v int
				if bytesPerSample == 1 {
					v = int(row[3*x+c])
				} else {
					o := 2 * (3*x + c)
					v = int(row[o])<<8 | int(row[o+1])
				}
				img.Pix[i+c] = uint8(min(v, h.maxVal) * 255 / h.maxVal)
			}
			img.Pix[i+3] = 0xff
		}
	}

	return img, nil
}

// DecodePPMConfig returns the dimensions of a P6 image without reading the raster
func DecodePPMConfig(r io.Reader) (image.Config, error) {
	h, err := readPPMHeader(bufio.NewReader(r))
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: color.RGBAModel, Width: h.width, Height: h.height}, nil
}

// EncodePPM writes img as a binary P6 PPM with 8-bit samples
func EncodePPM(w io.Writer, img image.Image) error {
	b := img.Bounds()
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", b.Dx(), b.Dy()); err != nil {
		return err
	}

	row := make([]byte, 3*b.Dx())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			i := 3 * (x - b.Min.X)
			row[i], row[i+1], row[i+2] = c.R, c.G, c.B
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func readPPMHeader(br *bufio.Reader) (ppmHeader, error) {
	magic := make([]byte, 2)
	if _, err := io.ReadFull(br, magic); err != nil || string(magic) != "P6" {
		return ppmHeader{}, ErrNotPPM
	}

	var fields [3]int
	for i := range fields {
		token, err := readPPMToken(br)
		if err != nil {
			return ppmHeader{}, fmt.Errorf("%w: %v", ErrMalformedPPM, err)
		}
		v, err := strconv.Atoi(token)
		if err != nil {
			return ppmHeader{}, fmt.Errorf("%w: %q is not a number", ErrMalformedPPM, token)
		}
		fields[i] = v
	}

	h := ppmHeader{width: fields[0], height: fields[1], maxVal: fields[2]}
	if h.width <= 0 || h.height <= 0 || h.width > maxPPMDimension || h.height > maxPPMDimension {
		return ppmHeader{}, fmt.Errorf("%w: size %dx%d", ErrMalformedPPM, h.width, h.height)
	}
	if h.width*h.height > maxPPMPixels {
		return ppmHeader{}, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrMalformedPPM, h.width, h.height, maxPPMPixels)
	}
	if h.maxVal <= 0 || h.maxVal > 65535 {
		return ppmHeader{}, fmt.Errorf("%w: max value %d", ErrMalformedPPM, h.maxVal)
	}

	// Exactly one whitespace byte separates the header from the raster, and
	// readPPMToken has already consumed it
	return h, nil
}

// readPPMToken returns the next whitespace-delimited header token, skipping
// comments. The single delimiter after the token is consumed.
func readPPMToken(br *bufio.Reader) (string, error) {
	var token []byte
	for {
		c, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(token) > 0 {
				return string(token), nil
			}
			return "", err
		}

		switch {
		case c == '#' && len(token) == 0:
			if _, err := br.ReadString('\n'); err != nil {
				return "", err
			}
		case isPPMSpace(c):
			if len(token) > 0 {
				return string(token), nil
			}
		default:
			token = append(token, c)
		}
	}
}

func isPPMSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}
