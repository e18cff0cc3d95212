package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"

	"github.com/storeops/storectl/internal/api"
	"github.com/storeops/storectl/internal/print/jsonprint"
	"github.com/storeops/storectl/internal/print/yamlprint"
	"gopkg.in/yaml.v3"
)

const configUsage = `
Usage:	storectl config [options]

   Prints the effective configuration. The configuration file is looked up at
   the path given by -c/--config, then the STORECTLCONFIG environment
   variable, then ~/.storectl/config.yaml; built-in defaults apply when no
   file exists.

Options:
   -c, --config path    Path to the storectl configuration file (overrides STORECTLCONFIG)
   -h, --help           Show this usage information
   -o, --output format  Output format, one of: json, yaml
`

const defaultConfigPath = "~/.storectl/config.yaml"

// configPath is registered as the -c/--config flag on every flag set.
var configPath = path(defaultConfigPath)

// path is a file system path flag value; the "~/" prefix resolves to the
// home directory of the user running the program.
type path string

func (p path) String() string {
	return string(p)
}

func (p *path) Set(s string) error {
	*p = path(s)
	return nil
}

func (p path) resolve() (string, error) {
	s := string(p)
	if len(s) >= 2 && s[0] == '~' && s[1] == os.PathSeparator {
		home, ok := os.LookupEnv("HOME")
		if !ok {
			u, err := user.Current()
			if err != nil {
				return "", err
			}
			home = u.HomeDir
		}
		return filepath.Join(home, s[2:]), nil
	}
	return s, nil
}

// configuration is the storectl configuration.
type configuration struct {
	API struct {
		URL string `yaml:"url" json:"url"`
	} `yaml:"api" json:"api"`
}

func defaultConfig() *configuration {
	c := new(configuration)
	c.API.URL = api.DefaultBaseURL
	return c
}

// loadConfig opens and reads the configuration file.
func loadConfig() (*configuration, error) {
	r, err := openConfig()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return readConfig(r)
}

// openConfig opens the configuration file; a missing file yields the
// built-in defaults.
func openConfig() (io.ReadCloser, error) {
	p := configPath
	if p == defaultConfigPath {
		if env := os.Getenv("STORECTLCONFIG"); env != "" {
			p = path(env)
		}
	}
	resolved, err := p.resolve()
	if err != nil {
		return nil, err
	}
	f, err := os.Open(resolved)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		b, _ := yaml.Marshal(defaultConfig())
		return io.NopCloser(bytes.NewReader(b)), nil
	}
	return f, nil
}

// readConfig reads and parses configuration.
func readConfig(r io.Reader) (*configuration, error) {
	c := defaultConfig()
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(c); err != nil {
		return nil, err
	}
	if c.API.URL == "" {
		c.API.URL = api.DefaultBaseURL
	}
	return c, nil
}

// apiClient constructs the products service client from the effective
// configuration.
func apiClient() (*api.Client, error) {
	config, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return api.NewClient(config.API.URL), nil
}

func configure(ctx context.Context, args []string) error {
	output := outputFormat("yaml")

	flagSet := newFlagSet("storectl config", configUsage)
	customVar(flagSet, &output, "o", "output")

	if _, err := parseFlags(flagSet, args); err != nil {
		return err
	}

	config, err := loadConfig()
	if err != nil {
		return err
	}
	switch output {
	case "json":
		return jsonprint.Encode(stdout, config)
	default:
		return yamlprint.Encode(stdout, config)
	}
}
