package colorkey

import "bytes"

// MakeTransparentBytes keys colorToRemove out of an encoded image held in
// memory and returns the result encoded as PNG.
func MakeTransparentBytes(data []byte, colorToRemove string) ([]byte, error) {
	img, _, err := DecodeImageBytes(data)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	keyed, err := MakeTransparent(img, ParseKey(colorToRemove))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, keyed); err != nil {
		return nil, &WriteError{Err: err}
	}
	return buf.Bytes(), nil
}
