// Package export writes a rendered chart frame to files.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/san-kum/brushchart/internal/app"
	"github.com/san-kum/brushchart/internal/chart"
	"github.com/san-kum/brushchart/internal/viz"
)

var (
	ErrUnknownFormat = errors.New("unknown export format")
	ErrTooFewSamples = errors.New("too few samples")
)

type Format string

const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

func Formats() []Format {
	return []Format{FormatSVG, FormatPNG, FormatXLSX, FormatJSON, FormatCSV}
}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(s, ".")))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	i := strings.LastIndex(path, ".")
	if i < 0 {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(path[i+1:])
}

func Write(w io.Writer, format Format, f chart.Frame[app.ChildView], t viz.Theme) error {
	switch format {
	case FormatSVG:
		_, err := io.WriteString(w, FrameToSVG(f, t))
		return err
	case FormatPNG:
		return PNG(w, f, t)
	case FormatXLSX:
		return XLSX(w, f)
	case FormatJSON:
		return JSON(w, f)
	case FormatCSV:
		return CSV(w, f)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func WriteFile(path string, format Format, f chart.Frame[app.ChildView], t viz.Theme) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(out, format, f, t); err != nil {
		out.Close()
		os.Remove(path)
		return err
	}
	return out.Close()
}
