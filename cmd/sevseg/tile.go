package main

import (
	"strings"

	"github.com/katalvlaran/sevseg/compose"
)

// tile lays readouts out left to right, starting a new band whenever the
// next readout would push the band past width columns. A readout wider
// than width gets a band of its own.
func tile(readouts []string, width, gap int) (string, error) {
	var (
		out  strings.Builder
		band []string
		used int
	)
	flush := func() error {
		if len(band) == 0 {
			return nil
		}
		s, err := compose.BlocksWith(band, compose.WithGap(gap))
		if err != nil {
			return err
		}
		out.WriteString(s)
		band = band[:0]
		used = 0
		return nil
	}

	for _, r := range readouts {
		w := compose.Width(r)
		need := w
		if len(band) > 0 {
			need += gap
		}
		if len(band) > 0 && used+need > width {
			if err := flush(); err != nil {
				return "", err
			}
			need = w
		}
		band = append(band, r)
		used += need
	}
	if err := flush(); err != nil {
		return "", err
	}

	return out.String(), nil
}
