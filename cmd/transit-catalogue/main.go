package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/golang/glog"
	"github.com/joho/godotenv"

	lib "github.com/theoremus-urban-solutions/transit-catalogue"
	"github.com/theoremus-urban-solutions/transit-catalogue/config"
	"github.com/theoremus-urban-solutions/transit-catalogue/domain"
	"github.com/theoremus-urban-solutions/transit-catalogue/formatter"
	"github.com/theoremus-urban-solutions/transit-catalogue/gtfs"
	"github.com/theoremus-urban-solutions/transit-catalogue/requests"
)

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|serve")
	input := flag.String("input", "", "request document or GTFS zip: path, URL or - for stdin (overrides config)")
	inputFormat := flag.String("inputFormat", "", "json|text|gtfs (overrides config)")
	format := flag.String("format", "", "json|xml|text|proto (overrides config)")
	port := flag.Int("port", 0, "HTTP port in serve mode (overrides config)")
	flag.Parse()

	lib.InitLogging()
	defer glog.Flush()

	// .env may point TRANSIT_CATALOGUE_CONFIG at a config file or set PORT.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		glog.Warningf("failed to read .env: %v", err)
	}
	if err := config.LoadAppConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			glog.Exitf("failed to load config: %v", err)
		}
		glog.Infof("no config file found, using defaults")
	}

	cfg := config.Config
	if *input != "" {
		cfg.Input.Path = *input
	}
	if *inputFormat != "" {
		cfg.Input.Format = *inputFormat
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if p := os.Getenv("PORT"); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			cfg.Server.Port = v
		}
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if err := config.Validate(cfg); err != nil {
		glog.Exitf("invalid configuration: %v", err)
	}
	glog.V(1).Infof("effective configuration:\n%s", cfg)

	in, err := loadInput(cfg, newFetcher())
	if err != nil {
		glog.Exitf("failed to load input: %v", err)
	}
	svc, err := lib.NewServiceFromInput(in, cfg.Routing, cfg.Render)
	if err != nil {
		glog.Exitf("%v", err)
	}

	switch *mode {
	case "oneshot":
		answers := svc.AnswerAll(in.Stats)
		if len(in.Stats) == 0 {
			answers = svc.AllBuses()
		}
		buf, _, err := formatter.NewResponseBuilder().Build(cfg.Output.Format, answers)
		if err != nil {
			glog.Exitf("failed to render responses: %v", err)
		}
		if err := writeResponses(os.Stdout, cfg.Output.Format, buf); err != nil {
			glog.Exitf("failed to write responses: %v", err)
		}
	case "serve":
		srv := lib.NewServer(svc, cfg)
		srv.Start()
		srv.HandleGracefulShutdown()
	default:
		glog.Exitf("unknown mode %q", *mode)
	}
}

// writeResponses writes a rendered document, ending JSON and XML with a newline.
func writeResponses(w io.Writer, format string, buf []byte) error {
	if _, err := w.Write(buf); err != nil {
		return err
	}
	if format == formatter.FormatJSON || format == formatter.FormatXML {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func loadInput(cfg config.AppConfig, f *fetcher) (requests.Input, error) {
	switch cfg.Input.Format {
	case "gtfs":
		batch, err := loadGTFS(cfg)
		if err != nil {
			return requests.Input{}, err
		}
		return requests.Input{Batch: batch}, nil
	case "text":
		data, err := f.fetch(cfg.Input.Path)
		if err != nil {
			return requests.Input{}, err
		}
		return requests.DecodeText(bytes.NewReader(data))
	default:
		data, err := f.fetch(cfg.Input.Path)
		if err != nil {
			return requests.Input{}, err
		}
		return requests.DecodeJSON(bytes.NewReader(data))
	}
}

func loadGTFS(cfg config.AppConfig) (batch domain.Batch, err error) {
	if cfg.GTFS.CachePath != "" {
		if batch, err := gtfs.LoadBatch(cfg.GTFS.CachePath); err == nil {
			glog.Infof("loaded GTFS records from cache %s", cfg.GTFS.CachePath)
			return batch, nil
		}
	}

	var feed *gtfs.Feed
	path := cfg.Input.Path
	if path == "" {
		path = cfg.GTFS.Path
	}
	switch {
	case path != "" && !isURL(path):
		feed, err = gtfs.LoadFromLocalZip(path)
	default:
		if path == "" {
			path = cfg.GTFS.StaticURL
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		feed, err = gtfs.FetchFeed(ctx, path)
	}
	if err != nil {
		return batch, fmt.Errorf("failed to read GTFS feed: %w", err)
	}

	batch = feed.ToBatch(gtfs.Options{ShapeDistUnit: cfg.GTFS.ShapeDistUnit, Source: path})
	if cfg.GTFS.CachePath != "" {
		if err := gtfs.SaveBatch(batch, cfg.GTFS.CachePath); err != nil {
			glog.Warningf("failed to write GTFS cache: %v", err)
		}
	}
	return batch, nil
}
