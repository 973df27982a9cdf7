// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartdata

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"stockaxes/stockval"

	"gopkg.in/yaml.v3"
)

// Series is a fixed price line, as stored in data files.
type Series struct {
	Symbol        string        `yaml:"symbol,omitempty"`
	PreviousClose float64       `yaml:"preclose"`
	Points        stockval.Line `yaml:"points"`
}

func (s *Series) Lines() []stockval.Line {
	if len(s.Points) == 0 {
		return nil
	}
	return []stockval.Line{s.Points}
}

func (s *Series) PreClose() float64 {
	return s.PreviousClose
}

// Validate rejects values which cannot be plotted. Unsorted points are sorted by time.
func (s *Series) Validate(logger *log.Logger) error {
	if math.IsNaN(s.PreviousClose) || math.IsInf(s.PreviousClose, 0) || s.PreviousClose < 0 {
		return fmt.Errorf("invalid previous close %v", s.PreviousClose)
	}
	for i, p := range s.Points {
		if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return fmt.Errorf("invalid price at point %d", i)
		}
	}
	less := func(i, j int) bool { return s.Points[i].X < s.Points[j].X }
	if !sort.SliceIsSorted(s.Points, less) {
		logger.Printf("Points of %s are not sorted by time, sorting.", s.name())
		sort.SliceStable(s.Points, less)
	}
	return nil
}

func (s *Series) name() string {
	if len(s.Symbol) == 0 {
		return "series"
	}
	return s.Symbol
}

// ReadSeries decodes and validates a YAML data file.
func ReadSeries(r io.Reader, logger *log.Logger) (*Series, error) {
	var s Series
	err := yaml.NewDecoder(r).Decode(&s)
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty data file")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode data file: %w", err)
	}
	if err := s.Validate(logger); err != nil {
		return nil, err
	}
	return &s, nil
}

func ReadSeriesFile(fileName string, logger *log.Logger) (*Series, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := ReadSeries(f, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return s, nil
}

// WriteSeriesFile writes to a temporary file first, and renames it to the target.
func WriteSeriesFile(fileName string, s *Series) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(fileName); len(dir) > 0 {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmpName := fileName + ".tmp"
	if err := os.WriteFile(tmpName, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpName, fileName)
}
