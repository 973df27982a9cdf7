// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

const AppName = "stockaxes"
const configFileName = "chartconfig.yaml"
const configFileVersion = 1

// GlobalConfig keeps the chart settings in a YAML file, by default within the
// user configuration directory. The file is read on first access.
type GlobalConfig struct {
	fileName  string
	loaded    bool
	appConfig AppConfig
	mutex     sync.Mutex
}

// File layout, settings are stored next to the file version.
type configFile struct {
	FileVersion int
	AppConfig   `yaml:",inline"`
}

// NewGlobalConfig uses the configuration file in the user configuration directory.
func NewGlobalConfig() Config {
	return NewGlobalConfigFile("")
}

// NewGlobalConfigFile uses the given configuration file.
// An empty file name selects the file in the user configuration directory.
func NewGlobalConfigFile(fileName string) Config {
	return &GlobalConfig{
		fileName:  fileName,
		appConfig: NewAppConfig(),
	}
}

func (g *GlobalConfig) GetAppName() string {
	return AppName
}

// Locks access to the configuration and returns a copy which can be modified.
// Unlock needs to be called afterwards, if no error was returned.
func (g *GlobalConfig) Lock() (*AppConfig, error) {
	g.mutex.Lock()
	if err := g.ensureLoaded(); err != nil {
		g.mutex.Unlock()
		return nil, err
	}
	c := g.appConfig.deepCopy()
	return &c, nil
}

// Unlock stores c and releases the lock. The file is only written if c differs from the current settings.
func (g *GlobalConfig) Unlock(c *AppConfig) error {
	defer g.mutex.Unlock()
	if g.appConfig.equal(c) {
		return nil
	}
	g.appConfig = *c
	return g.write()
}

func (g *GlobalConfig) Copy() (AppConfig, error) {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	if err := g.ensureLoaded(); err != nil {
		return AppConfig{}, err
	}
	return g.appConfig.deepCopy(), nil
}

func (g *GlobalConfig) path() (string, error) {
	if len(g.fileName) > 0 {
		return g.fileName, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("unable to determine configuration path: %w", err)
	}
	return filepath.Join(dir, g.GetAppName(), configFileName), nil
}

func (g *GlobalConfig) ensureLoaded() error {
	if g.loaded {
		return nil
	}
	fileName, err := g.path()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(fileName)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("Configuration file \"%s\" does not yet exist, using defaults.", fileName)
		g.loaded = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read configuration file: %w", err)
	}
	f := configFile{AppConfig: NewAppConfig()}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse configuration file %s: %w", fileName, err)
	}
	// Writing an older layout would drop unknown settings.
	if f.FileVersion > configFileVersion {
		return fmt.Errorf(
			"invalid configuration file version %d instead of %d, probably from a newer release",
			f.FileVersion,
			configFileVersion)
	}
	f.AppConfig.Sanitize()
	g.appConfig = f.AppConfig
	g.loaded = true
	return nil
}

func (g *GlobalConfig) write() error {
	fileName, err := g.path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fileName), 0700); err != nil {
		return fmt.Errorf("failed to create configuration directory: %w", err)
	}
	g.appConfig.Sanitize()
	f := configFile{FileVersion: configFileVersion, AppConfig: g.appConfig.deepCopy()}
	f.AppConfig.RemoveDefaults()
	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("error generating configuration file: %w", err)
	}
	tmpFileName := fileName + ".tmp"
	if err := os.WriteFile(tmpFileName, data, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}
	if err := os.Rename(tmpFileName, fileName); err != nil {
		return fmt.Errorf("failed to replace configuration file: %w", err)
	}
	return nil
}
