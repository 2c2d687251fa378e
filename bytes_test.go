package colorkey

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodeTestPNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// Ensure the byte-slice path matches the in-memory transform.
func TestMakeTransparentBytesMatchesImageTransform(t *testing.T) {
	src := newNRGBA(2, 1, color.NRGBA{255, 255, 255, 255}, color.NRGBA{10, 20, 30, 255})

	outputBytes, err := MakeTransparentBytes(encodeTestPNG(t, src), "white")
	if err != nil {
		t.Fatalf("MakeTransparentBytes error: %v", err)
	}

	gotImg, format, err := image.Decode(bytes.NewReader(outputBytes))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if format != "png" {
		t.Fatalf("expected png output, got %q", format)
	}

	want, err := MakeTransparent(src, KeyWhite)
	if err != nil {
		t.Fatalf("MakeTransparent: %v", err)
	}
	if !imagesEqual(want, gotImg) {
		t.Fatalf("byte path pixels differ from image path")
	}
	assertPixels(t, gotImg, color.NRGBA{255, 255, 255, 0}, color.NRGBA{10, 20, 30, 255})
}

func TestMakeTransparentBytesDecodeError(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("garbage")} {
		_, err := MakeTransparentBytes(data, "black")
		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) {
			t.Fatalf("input %q: expected *DecodeError, got %v", data, err)
		}
	}
}

func TestMakeTransparentBase64(t *testing.T) {
	src := newNRGBA(1, 1, color.NRGBA{5, 5, 5, 255})
	raw := base64.StdEncoding.EncodeToString(encodeTestPNG(t, src))

	for _, input := range []string{raw, "data:image/png;base64," + raw, "DATA:image/png;base64," + raw + "\n"} {
		output, err := MakeTransparentBase64(input, "black")
		if err != nil {
			t.Fatalf("MakeTransparentBase64: %v", err)
		}

		img, format, err := DecodeBase64Image(output)
		if err != nil {
			t.Fatalf("decode output: %v", err)
		}
		if format != "png" {
			t.Fatalf("expected png output, got %q", format)
		}
		assertPixels(t, img, color.NRGBA{0, 0, 0, 0})
	}
}

func TestMakeTransparentBase64InvalidInput(t *testing.T) {
	_, err := MakeTransparentBase64("%%%not-base64", "white")
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError, got %v", err)
	}
}

func imagesEqual(a, b image.Image) bool {
	if !a.Bounds().Eq(b.Bounds()) {
		return false
	}

	return bytes.Equal(cloneToNRGBA(a).Pix, cloneToNRGBA(b).Pix)
}
