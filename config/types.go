package config

import (
	"github.com/theoremus-urban-solutions/transit-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transit-catalogue/router"
)

// ServerConfig contains server configuration
type ServerConfig struct {
	Port           int      `yaml:"port" validate:"gte=0,lte=65535"`
	AllowedOrigins []string `yaml:"allowedOrigins" validate:"dive,required"`
	CacheEntries   int      `yaml:"cacheEntries" validate:"gte=0"`
}

// InputConfig describes where catalogue population records come from
type InputConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format" validate:"omitempty,oneof=json text gtfs"`
}

// GTFSConfig contains GTFS static feed configuration, used when input.format is gtfs
type GTFSConfig struct {
	StaticURL string `yaml:"staticURL" validate:"omitempty,url"`
	Path      string `yaml:"path"`
	// ShapeDistUnit is the length of one shape_dist_traveled unit in meters; 0 ignores the column.
	ShapeDistUnit float64 `yaml:"shapeDistUnit" validate:"gte=0"`
	// CachePath stores the converted records so later runs skip parsing the feed.
	CachePath string `yaml:"cachePath"`
}

// OutputConfig selects the response encoding
type OutputConfig struct {
	Format string `yaml:"format" validate:"omitempty,oneof=json xml text proto"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server  ServerConfig      `yaml:"server"`
	Routing router.Settings   `yaml:"routing"`
	Render  renderer.Settings `yaml:"render"`
	Input   InputConfig       `yaml:"input"`
	GTFS    GTFSConfig        `yaml:"gtfs"`
	Output  OutputConfig      `yaml:"output"`
}
