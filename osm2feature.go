package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"sync"
	"time"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"

	"github.com/osmgen/osm2feature/classif"
	"github.com/osmgen/osm2feature/config"
	"github.com/osmgen/osm2feature/element"
	"github.com/osmgen/osm2feature/ftype"
	"github.com/osmgen/osm2feature/log"
	"github.com/osmgen/osm2feature/metadata"
	"github.com/osmgen/osm2feature/stats"
)

type job struct {
	elem     element.OSMElem
	kind     string
	lon, lat float64
	hasPoint bool
}

// featureRecord is the NDJSON dump format of one classified element.
type featureRecord struct {
	ID          string            `json:"id"`
	Types       []string          `json:"types,omitempty"`
	Names       map[string]string `json:"names,omitempty"`
	HouseName   string            `json:"house_name,omitempty"`
	HouseNumber string            `json:"house_number,omitempty"`
	Street      string            `json:"street,omitempty"`
	Flats       string            `json:"flats,omitempty"`
	Rank        uint8             `json:"rank,omitempty"`
	Ref         string            `json:"ref,omitempty"`
	Layer       int8              `json:"layer,omitempty"`
	Reverse     bool              `json:"reverse,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type output struct {
	mu       sync.Mutex
	tree     *classif.Tree
	dump     *json.Encoder
	features *geojson.FeatureCollection
}

func (o *output) write(j job, params *ftype.FeatureParams) {
	if o.dump == nil && o.features == nil {
		return
	}

	var typeNames []string
	for _, t := range params.Types {
		typeNames = append(typeNames, o.tree.PathByType(t))
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.dump != nil {
		record := featureRecord{
			ID:          fmt.Sprintf("%s/%d", j.kind, j.elem.ID),
			Types:       typeNames,
			Names:       params.Names,
			HouseName:   params.HouseName,
			HouseNumber: params.HouseNumber,
			Street:      params.Street,
			Flats:       params.Flats,
			Rank:        params.Rank,
			Ref:         params.Ref,
			Layer:       params.Layer,
			Reverse:     params.ReverseGeometry,
			Metadata:    params.Metadata,
		}
		if err := o.dump.Encode(&record); err != nil {
			log.Fatalf("writing dump: %s", err)
		}
	}

	if o.features != nil && j.hasPoint {
		f := geojson.NewPointFeature([]float64{j.lon, j.lat})
		f.SetProperty("id", fmt.Sprintf("%s/%d", j.kind, j.elem.ID))
		f.SetProperty("types", typeNames)
		if name, ok := params.Names["default"]; ok {
			f.SetProperty("name", name)
		}
		o.features.AddFeature(f)
	}
}

func classifyWorker(classifier *ftype.Classifier, jobs <-chan job, out *output, counter *stats.Counter, wg *sync.WaitGroup) {
	defer wg.Done()
	for j := range jobs {
		params := classifier.Classify(&j.elem)
		if len(params.Types) == 0 {
			counter.AddSkipped()
			continue
		}
		counter.AddFeatures(len(params.Types))
		out.write(j, params)
	}
}

func run(opts *config.Options, classifier *ftype.Classifier, tree *classif.Tree) error {
	file, err := os.Open(opts.Read)
	if err != nil {
		return err
	}
	defer file.Close()

	out := &output{tree: tree}
	var dumpFile *os.File
	if opts.Dump != "" {
		dumpFile, err = os.Create(opts.Dump)
		if err != nil {
			return err
		}
		defer dumpFile.Close()
		out.dump = json.NewEncoder(dumpFile)
	}
	if opts.GeoJSON != "" {
		out.features = geojson.NewFeatureCollection()
	}

	counter := stats.NewCounter()
	jobs := make(chan job, 512)

	wg := sync.WaitGroup{}
	for i := 0; i < opts.Workers; i++ {
		wg.Add(1)
		go classifyWorker(classifier, jobs, out, counter, &wg)
	}

	progressDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				log.Printf("[progress] %s", counter.Report())
			case <-progressDone:
				return
			}
		}
	}()

	scanner := osmpbf.New(context.Background(), file, opts.Workers)
	defer scanner.Close()

	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			counter.AddNode()
			if len(o.Tags) == 0 {
				continue
			}
			jobs <- job{
				elem:     element.FromNode(o),
				kind:     "node",
				lon:      o.Lon,
				lat:      o.Lat,
				hasPoint: true,
			}
		case *osm.Way:
			counter.AddWay()
			if len(o.Tags) == 0 {
				continue
			}
			jobs <- job{elem: element.FromWay(o), kind: "way"}
		case *osm.Relation:
			if len(o.Tags) == 0 {
				continue
			}
			jobs <- job{
				elem: element.OSMElem{
					ID:   int64(o.ID),
					Type: element.Polygon,
					Tags: element.FromOSMTags(o.Tags),
				},
				kind: "relation",
			}
		}
	}
	close(jobs)
	wg.Wait()
	close(progressDone)

	if err := scanner.Err(); err != nil {
		return err
	}

	if out.features != nil {
		data, err := out.features.MarshalJSON()
		if err != nil {
			return err
		}
		if err := ioutil.WriteFile(opts.GeoJSON, data, 0644); err != nil {
			return err
		}
	}

	log.Println("[info]", counter.Report())
	return nil
}

func main() {
	opts, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("[error] %s", err)
	}
	if opts.Quiet {
		log.SetMinLevel(log.LWarn)
	}

	step := log.Step("Loading classification tree")
	tree, err := classif.Load(opts.Classificator)
	if err != nil {
		log.Fatalf("[error] %s", err)
	}
	step()

	classifier := ftype.New(tree, ftype.WithMetadata(metadata.Collect))

	step = log.Step("Classifying elements")
	if err := run(opts, classifier, tree); err != nil {
		log.Fatalf("[error] %s", err)
	}
	step()
}
