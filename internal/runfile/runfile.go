// Package runfile loads clustering inputs from TOML or JSON files.
//
// A run file names the points, the seed centroids and optionally k, the
// iteration budget and the tolerance:
//
//	k = 2
//	max_iterations = 100
//	tolerance = 0.001
//	points = [[1, 1], [2, 1], [4, 3], [5, 4]]
//	centroids = [[1.5, 1], [4.5, 3.5]]
//
// When k is omitted it defaults to the number of centroids.
package runfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hupe1980/lloyd"
	"github.com/hupe1980/lloyd/codec"
	"github.com/hupe1980/lloyd/model"
)

// ErrUnsupportedFormat is returned for files that are neither TOML nor JSON.
var ErrUnsupportedFormat = errors.New("runfile: unsupported format")

// Format identifies the encoding of a run file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// File is the decoded content of a run file.
type File struct {
	K             *int        `toml:"k" json:"k"`
	MaxIterations *int        `toml:"max_iterations" json:"max_iterations"`
	Tolerance     *float64    `toml:"tolerance" json:"tolerance"`
	Points        [][]float64 `toml:"points" json:"points"`
	Centroids     [][]float64 `toml:"centroids" json:"centroids"`
}

// Load reads the run file at path. The format is chosen by extension.
// JSON files are decoded with c, or codec.Default if c is nil.
func Load(path string, c codec.Codec) (*File, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("runfile: read %s: %w", path, err)
	}

	f, err := Parse(data, format, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a run file in the given format.
// JSON is decoded with c, or codec.Default if c is nil.
func Parse(data []byte, format Format, c codec.Codec) (*File, error) {
	if c == nil {
		c = codec.Default
	}

	var f File

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("runfile: decode toml: %w", err)
		}
	case FormatJSON:
		if err := c.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("runfile: decode json (%s): %w", c.Name(), err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if f.K == nil {
		k := len(f.Centroids)
		f.K = &k
	}
	return &f, nil
}

// Inputs converts the coordinate lists of f into points and centroids.
func (f *File) Inputs() (points, centroids []model.Point, err error) {
	if points, err = toPoints("points", f.Points); err != nil {
		return nil, nil, err
	}
	if centroids, err = toPoints("centroids", f.Centroids); err != nil {
		return nil, nil, err
	}
	return points, centroids, nil
}

// Options returns the run options set by f.
func (f *File) Options() []lloyd.Option {
	var opts []lloyd.Option
	if f.MaxIterations != nil {
		opts = append(opts, lloyd.WithMaxIterations(*f.MaxIterations))
	}
	if f.Tolerance != nil {
		opts = append(opts, lloyd.WithTolerance(*f.Tolerance))
	}
	return opts
}

func toPoints(field string, coords [][]float64) ([]model.Point, error) {
	pts := make([]model.Point, len(coords))
	for i, c := range coords {
		if len(c) != 2 {
			return nil, fmt.Errorf("runfile: %s[%d]: expected 2 coordinates, got %d", field, i, len(c))
		}
		pts[i] = model.Pt(c[0], c[1])
	}
	return pts, nil
}

func formatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}
