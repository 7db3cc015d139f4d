package config

import (
	"encoding/json"
	"flag"
	"os"
	"runtime"

	"github.com/pkg/errors"
)

// Config is the optional JSON configuration file; flags override its
// values.
type Config struct {
	Classificator string `json:"classificator"`
	Workers       int    `json:"workers"`
	Dump          string `json:"dump"`
	GeoJSON       string `json:"geojson"`
}

type Options struct {
	Read          string
	Classificator string
	Workers       int
	Dump          string
	GeoJSON       string
	Quiet         bool
}

func ParseFlags(args []string) (*Options, error) {
	flags := flag.NewFlagSet("osm2feature", flag.ExitOnError)

	opts := Options{}
	configFile := flags.String("config", "", "JSON configuration file")
	flags.StringVar(&opts.Read, "read", "", "OSM PBF file to read")
	flags.StringVar(&opts.Classificator, "classificator", "", "classification tree (YAML)")
	flags.IntVar(&opts.Workers, "workers", 0, "number of classification workers (0 = all CPUs)")
	flags.StringVar(&opts.Dump, "dump", "", "write feature parameters as NDJSON to file")
	flags.StringVar(&opts.GeoJSON, "geojson", "", "write classified points as GeoJSON to file")
	flags.BoolVar(&opts.Quiet, "quiet", false, "only print warnings and errors")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if err := opts.updateFromConfig(*configFile); err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &opts, nil
}

func (o *Options) updateFromConfig(filename string) error {
	if filename == "" {
		return nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err, "opening config file")
	}
	defer f.Close()

	conf := Config{}
	if err := json.NewDecoder(f).Decode(&conf); err != nil {
		return errors.Wrap(err, "parsing config file")
	}

	if o.Classificator == "" {
		o.Classificator = conf.Classificator
	}
	if o.Workers == 0 {
		o.Workers = conf.Workers
	}
	if o.Dump == "" {
		o.Dump = conf.Dump
	}
	if o.GeoJSON == "" {
		o.GeoJSON = conf.GeoJSON
	}
	return nil
}

func (o *Options) validate() error {
	if o.Read == "" {
		return errors.New("missing -read")
	}
	if o.Classificator == "" {
		return errors.New("missing -classificator")
	}
	if o.Workers < 0 {
		return errors.Errorf("invalid workers count %d", o.Workers)
	}
	if o.Workers == 0 {
		o.Workers = runtime.NumCPU()
	}
	return nil
}
