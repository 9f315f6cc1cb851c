package main

import (
	"fmt"
	"io/ioutil"
	"log"

	"gopkg.in/yaml.v3"
)

type appConfig struct {
	fullscreen     bool
	width          int32
	height         int32
	shader         string
	noVertexArrays bool
}

type tmpConfig struct {
	Fullscreen    bool
	Width, Height int32
	Shader        string
	VertexArrays  *bool `yaml:"vertexArrays"`
}

func (c *appConfig) UnmarshalYAML(value *yaml.Node) error {
	var tmp tmpConfig
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	if tmp.Width == 0 || tmp.Height == 0 {
		return fmt.Errorf("invalid size (w=%d, h=%d)", tmp.Width, tmp.Height)
	}

	*c = appConfig{fullscreen: tmp.Fullscreen, width: tmp.Width,
		height: tmp.Height, shader: tmp.Shader}
	if tmp.VertexArrays != nil {
		c.noVertexArrays = !*tmp.VertexArrays
	}
	return nil
}

func defaultConfig() appConfig {
	return appConfig{fullscreen: false, width: 800, height: 600}
}

func loadConfig(path string) appConfig {
	if path == "" {
		return defaultConfig()
	}
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		log.Fatalf("could not read config file %s: %s", path, err.Error())
	}
	config := defaultConfig()
	if err := yaml.Unmarshal(raw, &config); err != nil {
		log.Fatalf("could not parse config file %s: %s", path, err.Error())
	}
	return config
}
