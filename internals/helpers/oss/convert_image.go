package helper

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

const (
	avatarSide   = 512
	maxImageSide = 1600
	webpQuality  = 80
)

func decodeImage(all []byte) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	default:
		return nil, fmt.Errorf("unsupported image type: %s", ct)
	}
}

// capSize scales down keeping aspect when either side exceeds maxImageSide.
func capSize(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxImageSide && h <= maxImageSide {
		return img
	}
	nw, nh := w, h
	if w >= h {
		nw = maxImageSide
		nh = h * maxImageSide / w
	} else {
		nh = maxImageSide
		nw = w * maxImageSide / h
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

// EncodeWebP re-encodes an uploaded image (jpeg/png/webp) to lossy WebP,
// capped at maxImageSide on the long edge.
func EncodeWebP(all []byte) ([]byte, error) {
	img, err := decodeImage(all)
	if err != nil {
		return nil, err
	}
	img = capSize(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("webp encode: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeAvatarWebP center-crops to a square before encoding so avatars
// render consistently.
func EncodeAvatarWebP(all []byte) ([]byte, error) {
	img, err := decodeImage(all)
	if err != nil {
		return nil, err
	}
	img = imaging.Fill(img, avatarSide, avatarSide, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("webp encode: %w", err)
	}
	return buf.Bytes(), nil
}

// ReadAllLimited drains a multipart file with a hard size cap.
func ReadAllLimited(fh *multipart.FileHeader, limit int64) ([]byte, error) {
	if fh.Size > limit {
		return nil, fmt.Errorf("file too large (%d bytes, max %d)", fh.Size, limit)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
