package main

import (
	"path/filepath"
	"strings"
)

// outputPathFor returns output when set, otherwise <name>_transparent.png
// next to input. Without an input path the base name is "output".
func outputPathFor(output, input string) string {
	if output != "" {
		return output
	}

	base := "output"
	if input != "" {
		base = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	}
	return filepath.Join(filepath.Dir(input), base+"_transparent.png")
}
