package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const presetFileName = ".clack.json"

type Config struct {
	Key     string `json:"key" yaml:"key"`
	Tempo   int64  `json:"tempo" yaml:"tempo"`
	Timesig string `json:"timesig" yaml:"timesig"`
}

type ConfigManager struct {
	Config     []Config
	ConfigPath string
	File       *os.File
	FileInfo   os.FileInfo
}

func DefaultPresetPath() string {
	return UserHomeDir() + presetFileName
}

// NewConfigManager opens the preset file for reading. A missing file is an
// empty preset list; it is only created by WriteConfig.
func NewConfigManager(filePath string) (*ConfigManager, error) {
	if filePath == "" {
		filePath = DefaultPresetPath()
	}
	cm := &ConfigManager{
		ConfigPath: filePath,
		Config:     []Config{},
	}

	f, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return cm, nil
		}
		return nil, errors.Wrap(err, "open preset file")
	}

	fileInfo, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "stat preset file")
	}

	cm.File = f
	cm.FileInfo = fileInfo
	return cm, nil
}

func (cm *ConfigManager) isYAML() bool {
	ext := strings.ToLower(filepath.Ext(cm.ConfigPath))
	return ext == ".yaml" || ext == ".yml"
}

func (cm *ConfigManager) IsFileNotEmpty() bool {
	return cm.FileInfo != nil && cm.FileInfo.Size() > 0
}

func (cm *ConfigManager) Close() error {
	if cm.File == nil {
		return nil
	}
	return cm.File.Close()
}

func (cm *ConfigManager) LoadConfig() error {
	if !cm.IsFileNotEmpty() {
		return nil
	}

	var err error
	if cm.isYAML() {
		err = yaml.NewDecoder(cm.File).Decode(&cm.Config)
	} else {
		err = json.NewDecoder(cm.File).Decode(&cm.Config)
	}
	if err != nil {
		return errors.Wrapf(err, "decode %s", cm.ConfigPath)
	}
	return nil
}

func (cm *ConfigManager) GetConfigByKey(key string) *Config {
	for _, config := range cm.Config {
		if config.Key == key {
			return &config
		}
	}
	return nil
}

func (cm *ConfigManager) WriteConfig() error {
	var (
		newConf []byte
		err     error
	)
	if cm.isYAML() {
		newConf, err = yaml.Marshal(cm.Config)
	} else {
		newConf, err = json.Marshal(cm.Config)
	}
	if err != nil {
		return errors.Wrap(err, "encode presets")
	}

	if err := os.WriteFile(cm.ConfigPath, newConf, 0644); err != nil {
		return errors.Wrapf(err, "write %s", cm.ConfigPath)
	}
	return nil
}

func initConfigManager(path string) (*ConfigManager, error) {
	cm, err := NewConfigManager(path)
	if err != nil {
		return nil, err
	}
	defer cm.Close()

	err = cm.LoadConfig()
	if err != nil {
		return nil, err
	}
	return cm, nil
}

func CreateConf(path string, cfg Config) error {
	if !ValidTempo(cfg.Tempo) {
		return fmt.Errorf("tempo %v is not valid", cfg.Tempo)
	}
	if _, err := ValidTimeSig(cfg.Timesig); err != nil {
		return err
	}

	cm, err := initConfigManager(path)
	if err != nil {
		return err
	}

	c := cm.GetConfigByKey(cfg.Key)
	if c != nil {
		return errors.New("this config is already exist")
	}

	cm.Config = append(cm.Config, cfg)
	return cm.WriteConfig()
}

func DeleteConfig(path, key string) error {
	cm, err := initConfigManager(path)
	if err != nil {
		return err
	}

	c := cm.GetConfigByKey(key)
	if c == nil {
		return fmt.Errorf("`%v` config not found", key)
	}

	for i, config := range cm.Config {
		if config.Key == c.Key {
			cm.Config = append(cm.Config[:i], cm.Config[i+1:]...)
			break
		}
	}

	return cm.WriteConfig()
}

func ListConfig(path string) ([]Config, error) {
	cm, err := initConfigManager(path)
	if err != nil {
		return nil, err
	}
	return cm.Config, nil
}

func LoadPreset(path, key string) (*Config, error) {
	cm, err := initConfigManager(path)
	if err != nil {
		return nil, err
	}

	c := cm.GetConfigByKey(key)
	if c == nil {
		return nil, fmt.Errorf("`%v` config not found", key)
	}
	return c, nil
}
