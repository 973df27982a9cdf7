// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

// TestConfig keeps the configuration in memory and counts how often it would
// have been written. Not thread safe, intended only for use in unit tests.
type TestConfig struct {
	appConfig AppConfig
	Writes    int
}

func NewTestConfig() *TestConfig {
	return &TestConfig{
		appConfig: NewAppConfig(),
	}
}

func (t *TestConfig) GetAppName() string {
	return "test"
}

func (t *TestConfig) Lock() (*AppConfig, error) {
	c := t.appConfig.deepCopy()
	return &c, nil
}

func (t *TestConfig) Unlock(c *AppConfig) error {
	if !t.appConfig.equal(c) {
		t.appConfig = *c
		t.Writes++
	}
	return nil
}

func (t *TestConfig) Copy() (AppConfig, error) {
	return t.appConfig.deepCopy(), nil
}
