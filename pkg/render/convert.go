package render

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/darkstore/rackplan/pkg/errors"
)

// converterBin is the external tool used for SVG conversion. Ships with
// librsvg (macOS: brew install librsvg, Linux: apt install librsvg2-bin).
const converterBin = "rsvg-convert"

// ToPDF converts SVG bytes to PDF.
func ToPDF(svg []byte) ([]byte, error) {
	return convert(svg, "pdf")
}

// ToPNG converts SVG bytes to PNG. A scale of 2.0 doubles the pixel
// resolution of the output.
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	args := []string{"--background-color", "white"}
	if scale > 0 {
		args = append(args, "-z", fmt.Sprintf("%.2f", scale))
	}
	return convert(svg, "png", args...)
}

func convert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	path, err := exec.LookPath(converterBin)
	if err != nil {
		return nil, errors.New(errors.ErrCodeInternal,
			"%s export requires librsvg (install %s and retry)", format, converterBin)
	}

	cmd := exec.Command(path, append([]string{"-f", format}, extraArgs...)...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err,
			"%s: %s", converterBin, stderr.String())
	}
	return out.Bytes(), nil
}
