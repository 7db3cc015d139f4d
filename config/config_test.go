package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestParseFlags(t *testing.T) {
	opts, err := ParseFlags([]string{
		"-read", "extract.osm.pbf",
		"-classificator", "classificator.yml",
		"-workers", "4",
	})
	if err != nil {
		t.Fatal(err)
	}
	if opts.Read != "extract.osm.pbf" || opts.Workers != 4 {
		t.Fatal(opts)
	}
}

func TestParseFlagsMissingRequired(t *testing.T) {
	if _, err := ParseFlags(nil); err == nil {
		t.Fatal("expected error for missing -read")
	}
	if _, err := ParseFlags([]string{"-read", "a.pbf"}); err == nil {
		t.Fatal("expected error for missing -classificator")
	}
}

func TestParseFlagsConfigFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "osm2feature")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	confFile := filepath.Join(dir, "conf.json")
	err = ioutil.WriteFile(confFile, []byte(
		`{"classificator": "from-config.yml", "workers": 2, "dump": "out.ndjson"}`,
	), 0644)
	if err != nil {
		t.Fatal(err)
	}

	// flags win over config values
	opts, err := ParseFlags([]string{
		"-config", confFile,
		"-read", "a.pbf",
		"-workers", "8",
	})
	if err != nil {
		t.Fatal(err)
	}
	if opts.Classificator != "from-config.yml" {
		t.Fatal(opts)
	}
	if opts.Workers != 8 {
		t.Fatal(opts)
	}
	if opts.Dump != "out.ndjson" {
		t.Fatal(opts)
	}
}
