package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// MapConfig describes the static map surface handed to the renderer.
type MapConfig struct {
	CenterX            float64 `json:"centerX" mapstructure:"centerX"`
	CenterY            float64 `json:"centerY" mapstructure:"centerY"`
	ExtentMinX         float64 `json:"extentMinX" mapstructure:"extentMinX"`
	ExtentMinY         float64 `json:"extentMinY" mapstructure:"extentMinY"`
	ExtentMaxX         float64 `json:"extentMaxX" mapstructure:"extentMaxX"`
	ExtentMaxY         float64 `json:"extentMaxY" mapstructure:"extentMaxY"`
	PanBoundMinX       float64 `json:"panBoundMinX" mapstructure:"panBoundMinX"`
	PanBoundMinY       float64 `json:"panBoundMinY" mapstructure:"panBoundMinY"`
	PanBoundMaxX       float64 `json:"panBoundMaxX" mapstructure:"panBoundMaxX"`
	PanBoundMaxY       float64 `json:"panBoundMaxY" mapstructure:"panBoundMaxY"`
	ZoomInitial        int     `json:"zoomInitial" mapstructure:"zoomInitial"`
	ZoomMin            int     `json:"zoomMin" mapstructure:"zoomMin"`
	ZoomMax            int     `json:"zoomMax" mapstructure:"zoomMax"`
	BackgroundImageURL string  `json:"backgroundImage" mapstructure:"backgroundImage"`
}

// PlacementConfig holds marker placement tuning.
type PlacementConfig struct {
	// AnchorOffset is added to the clicked Y coordinate so the icon's
	// bottom anchor sits on the clicked point.
	AnchorOffset float64 `json:"anchorOffset" mapstructure:"anchorOffset"`
}

// IconConfig holds marker icon presentation settings.
type IconConfig struct {
	Width       int    `json:"width" mapstructure:"width"`
	Height      int    `json:"height" mapstructure:"height"`
	HoverWidth  int    `json:"hoverWidth" mapstructure:"hoverWidth"`
	HoverHeight int    `json:"hoverHeight" mapstructure:"hoverHeight"`
	ShadowURL   string `json:"shadowUrl" mapstructure:"shadowUrl"`
	CityURL     string `json:"cityUrl" mapstructure:"cityUrl"`
	TownURL     string `json:"townUrl" mapstructure:"townUrl"`
	EventURL    string `json:"eventUrl" mapstructure:"eventUrl"`
}

// GraylogConfig holds GELF log sink settings.
type GraylogConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Address string `json:"address" mapstructure:"address"`
}

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file.
func Load(configDir string) error {
	// Set default values
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./mapmarkslogs")

	// Campaign map geometry, matching the bundled map image
	viper.SetDefault("map.centerX", 0.08)
	viper.SetDefault("map.centerY", 0.04)
	viper.SetDefault("map.extentMinX", 0.0)
	viper.SetDefault("map.extentMinY", 0.0)
	viper.SetDefault("map.extentMaxX", 0.16)
	viper.SetDefault("map.extentMaxY", 0.08)
	viper.SetDefault("map.panBoundMinX", -0.01)
	viper.SetDefault("map.panBoundMinY", -0.01)
	viper.SetDefault("map.panBoundMaxX", 0.17)
	viper.SetDefault("map.panBoundMaxY", 0.09)
	viper.SetDefault("map.zoomInitial", 14)
	viper.SetDefault("map.zoomMin", 13)
	viper.SetDefault("map.zoomMax", 17)
	viper.SetDefault("map.backgroundImage", "/map.webp")

	viper.SetDefault("placement.anchorOffset", 0.00005)

	viper.SetDefault("icons.width", 24)
	viper.SetDefault("icons.height", 36)
	viper.SetDefault("icons.hoverWidth", 30)
	viper.SetDefault("icons.hoverHeight", 45)
	viper.SetDefault("icons.shadowUrl", "/markers/marker-shadow.webp")
	viper.SetDefault("icons.cityUrl", "/markers/city.png")
	viper.SetDefault("icons.townUrl", "/markers/town.png")
	viper.SetDefault("icons.eventUrl", "/markers/dice.png")

	viper.SetDefault("seed.path", "./data_map.json")
	viper.SetDefault("export.indent", "  ")

	viper.SetDefault("graylog.enabled", false)
	viper.SetDefault("graylog.address", "localhost:12201")

	viper.SetConfigName("mapmarks.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetFloat returns a float config value.
func GetFloat(key string) float64 {
	return viper.GetFloat64(key)
}

// GetMapConfig returns the map surface configuration.
func GetMapConfig() MapConfig {
	return MapConfig{
		CenterX:            viper.GetFloat64("map.centerX"),
		CenterY:            viper.GetFloat64("map.centerY"),
		ExtentMinX:         viper.GetFloat64("map.extentMinX"),
		ExtentMinY:         viper.GetFloat64("map.extentMinY"),
		ExtentMaxX:         viper.GetFloat64("map.extentMaxX"),
		ExtentMaxY:         viper.GetFloat64("map.extentMaxY"),
		PanBoundMinX:       viper.GetFloat64("map.panBoundMinX"),
		PanBoundMinY:       viper.GetFloat64("map.panBoundMinY"),
		PanBoundMaxX:       viper.GetFloat64("map.panBoundMaxX"),
		PanBoundMaxY:       viper.GetFloat64("map.panBoundMaxY"),
		ZoomInitial:        viper.GetInt("map.zoomInitial"),
		ZoomMin:            viper.GetInt("map.zoomMin"),
		ZoomMax:            viper.GetInt("map.zoomMax"),
		BackgroundImageURL: viper.GetString("map.backgroundImage"),
	}
}

// GetPlacementConfig returns placement tuning.
func GetPlacementConfig() PlacementConfig {
	return PlacementConfig{
		AnchorOffset: viper.GetFloat64("placement.anchorOffset"),
	}
}

// GetIconConfig returns icon presentation settings.
func GetIconConfig() IconConfig {
	return IconConfig{
		Width:       viper.GetInt("icons.width"),
		Height:      viper.GetInt("icons.height"),
		HoverWidth:  viper.GetInt("icons.hoverWidth"),
		HoverHeight: viper.GetInt("icons.hoverHeight"),
		ShadowURL:   viper.GetString("icons.shadowUrl"),
		CityURL:     viper.GetString("icons.cityUrl"),
		TownURL:     viper.GetString("icons.townUrl"),
		EventURL:    viper.GetString("icons.eventUrl"),
	}
}

// GetGraylogConfig returns GELF sink settings.
func GetGraylogConfig() GraylogConfig {
	return GraylogConfig{
		Enabled: viper.GetBool("graylog.enabled"),
		Address: viper.GetString("graylog.address"),
	}
}
