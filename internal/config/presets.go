package config

import "sort"

var Presets = map[string]*Config{
	"quick": {
		Rows: 10_000, Device: "cpu", Seed: DefaultSeed,
		Sample: DefaultSample, HistBins: DefaultHistBins,
	},
	"standard": {
		Rows: 1_000_000, Device: "both", Seed: DefaultSeed,
		Sample: DefaultSample, HistBins: DefaultHistBins,
	},
	"stress": {
		Rows: 10_000_000, Device: "both", Seed: DefaultSeed,
		Sample: DefaultSample, HistBins: DefaultHistBins,
	},
}

func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
