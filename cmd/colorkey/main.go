package main

import (
	"fmt"
	"os"

	colorkey "github.com/gcslaoli/colorkey-go"
	"github.com/spf13/cobra"
)

// go run ./cmd/colorkey -i itl-logo-v2.png -o itl-logo-v2-transparent.png -c black
// go run ./cmd/colorkey -i scan.jpg -c white
// go run ./cmd/colorkey --inbase64 "data:image/png;base64,..." --outbase64 -c white

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "colorkey",
		Short:         "Make a white or black image background transparent",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	cmd.Flags().StringP("input", "i", "", "Path to the source image (png/jpg/gif/webp/bmp/tiff)")
	cmd.Flags().String("inbase64", "", "Base64 image input (optionally data URL)")
	cmd.Flags().StringP("output", "o", "", "Output path (defaults to <name>_transparent.png)")
	cmd.Flags().Bool("outbase64", false, "Write the PNG as base64 to stdout instead of a file")
	cmd.Flags().StringP("color", "c", "black", "Background color to remove (white or black)")
	cmd.MarkFlagsOneRequired("input", "inbase64")
	cmd.MarkFlagsMutuallyExclusive("input", "inbase64")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	inputBase64, _ := cmd.Flags().GetString("inbase64")
	output, _ := cmd.Flags().GetString("output")
	outputBase64, _ := cmd.Flags().GetBool("outbase64")
	colorName, _ := cmd.Flags().GetString("color")

	out := cmd.OutOrStdout()

	if inputBase64 != "" && outputBase64 {
		encoded, err := colorkey.MakeTransparentBase64(inputBase64, colorName)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, encoded)
		return nil
	}

	engine := &colorkey.Engine{Out: out}

	if inputBase64 != "" {
		img, _, err := colorkey.DecodeBase64Image(inputBase64)
		if err != nil {
			return &colorkey.DecodeError{Err: err}
		}
		keyed, err := engine.MakeTransparent(img, colorkey.ParseKey(colorName))
		if err != nil {
			return err
		}
		return engine.SavePNG(outputPathFor(output, ""), keyed)
	}

	if outputBase64 {
		f, err := os.Open(input)
		if err != nil {
			return &colorkey.DecodeError{Path: input, Err: err}
		}
		defer f.Close()

		img, _, err := colorkey.Decode(f)
		if err != nil {
			return &colorkey.DecodeError{Path: input, Err: err}
		}
		keyed, err := engine.MakeTransparent(img, colorkey.ParseKey(colorName))
		if err != nil {
			return err
		}
		encoded, err := colorkey.EncodePNGToBase64(keyed)
		if err != nil {
			return fmt.Errorf("encode base64 output: %w", err)
		}
		fmt.Fprintln(out, encoded)
		return nil
	}

	return engine.MakeTransparentFile(input, outputPathFor(output, input), colorName)
}
