package colorkey

import (
	"bytes"
	"fmt"
	"image"
	"os"
)

// MakeTransparentFile keys colorToRemove out of the image at inputPath and
// writes the result as PNG to outputPath, replacing any existing file.
func MakeTransparentFile(inputPath, outputPath, colorToRemove string) error {
	return NewEngine().MakeTransparentFile(inputPath, outputPath, colorToRemove)
}

// MakeTransparentFile is the file based form of MakeTransparent. Decode
// failures are returned as *DecodeError and output failures as *WriteError.
// A confirmation naming outputPath is written to e.Out on success.
func (e *Engine) MakeTransparentFile(inputPath, outputPath, colorToRemove string) error {
	img, err := decodeFile(inputPath)
	if err != nil {
		return &DecodeError{Path: inputPath, Err: err}
	}

	keyed, err := e.MakeTransparent(img, ParseKey(colorToRemove))
	if err != nil {
		return err
	}

	return e.SavePNG(outputPath, keyed)
}

// SavePNG encodes img as PNG into outputPath, replacing any existing file,
// and writes a confirmation to e.Out. Failures are returned as *WriteError.
func (e *Engine) SavePNG(outputPath string, img image.Image) error {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return &WriteError{Path: outputPath, Err: err}
	}

	if err := writeFile(outputPath, buf.Bytes()); err != nil {
		return &WriteError{Path: outputPath, Err: err}
	}

	if e.Out != nil {
		fmt.Fprintf(e.Out, "Saved to %s\n", outputPath)
	}
	return nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := Decode(f)
	return img, err
}

// writeFile stores data at path. A file left incomplete by a failed write or
// close is removed.
func writeFile(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	_, err = f.Write(data)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
