package config

import (
	_ "embed"
)

//go:embed param_default.yaml
var ParamDefaultFile []byte

type ServerParam struct {
	ApiParam      ApiParam      `yaml:"api"`
	PlaylistParam PlaylistParam `yaml:"playlist"`
}

type ApiParam struct {
	Enabled        bool     `yaml:"enabled"`
	Port           int64    `yaml:"port"`
	Ssl            bool     `yaml:"ssl"`
	ApiKey         string   `yaml:"api_key"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type PlaylistParam struct {
	InitialSongs []string `yaml:"initial_songs"`
	Autoplay     bool     `yaml:"autoplay"`
}
