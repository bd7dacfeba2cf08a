package imageenc

import (
	"bytes"
	"image"
	_ "image/gif" // register gif
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
)

// downscale shrinks the image so its longest side is at most maxDim.
// ok is false when the image cannot be decoded or is already small enough,
// in which case the original bytes should be used.
func downscale(data []byte, mimeType string, maxDim, quality int) (out []byte, outType string, ok bool) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", false
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDim && h <= maxDim {
		return nil, "", false
	}

	nw, nh := maxDim, maxDim
	if w >= h {
		nh = h * maxDim / w
	} else {
		nw = w * maxDim / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	if mimeType == "image/jpeg" {
		if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: quality}); err != nil {
			return nil, "", false
		}
		return buf.Bytes(), "image/jpeg", true
	}
	if err := png.Encode(&buf, dst); err != nil {
		return nil, "", false
	}
	return buf.Bytes(), "image/png", true
}
