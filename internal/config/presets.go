package config

import (
	"fmt"
	"sort"
)

// Presets only set the data shape; everything else comes from DefaultConfig.
var Presets = map[string]*Config{
	"default": {Samples: DefaultSamples, MaxValue: DefaultMaxValue, Selection: []float64{0, 1.5}},
	"dense":   {Samples: 120, MaxValue: DefaultMaxValue, Selection: []float64{0, 6}},
	"sparse":  {Samples: 8, MaxValue: DefaultMaxValue, Selection: []float64{0, 1.5}},
	"wide":    {Samples: DefaultSamples, MaxValue: DefaultMaxValue, Selection: []float64{0, 10}},
}

func GetPreset(name string) (*Config, error) {
	p, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	cfg := DefaultConfig()
	cfg.Samples = p.Samples
	cfg.MaxValue = p.MaxValue
	cfg.Selection = append([]float64(nil), p.Selection...)
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
