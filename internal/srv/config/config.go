package config

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"os"
	"path/filepath"
)

const paramFilename = "param.yaml"

type ServerConfig struct {
	ConfigDir string
	DebugMode bool

	*ServerParam
}

func NewServerConfig(configDir string, debugMode bool) *ServerConfig {
	serverConfig := &ServerConfig{
		ConfigDir: configDir,
		DebugMode: debugMode,
	}

	// Check Configuration folder
	_, err := os.Stat(configDir)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.Printf("Creation of config folder: %s", configDir)
			err = os.MkdirAll(configDir, 0770)
			if err != nil {
				logrus.Fatalf("Unable to create config folder: %v\n", err)
			}
		} else {
			logrus.Fatalf("Unable to access config folder: %s", configDir)
		}
	}

	serverParam, err := LoadServerParam(serverConfig.GetCompleteParamFilename())
	switch {
	case err == nil:
		serverConfig.ServerParam = serverParam
	case os.IsNotExist(err):
		// Create default param file
		logrus.Infof("Create default param file")
		serverConfig.ServerParam, err = DefaultServerParam()
		if err != nil {
			logrus.Fatalf("Unable to interpret default param file: %v\n", err)
		}
		serverConfig.SaveParam()
	default:
		logrus.Fatalf("Unable to interpret param file: %v\n", err)
	}

	return serverConfig
}

// LoadServerParam reads and decodes a param file.
func LoadServerParam(filename string) (*ServerParam, error) {
	rawConfig, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	serverParam := &ServerParam{}
	err = yaml.Unmarshal(rawConfig, serverParam)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filename, err)
	}
	return serverParam, nil
}

func DefaultServerParam() (*ServerParam, error) {
	serverParam := &ServerParam{}
	err := yaml.Unmarshal(ParamDefaultFile, serverParam)
	if err != nil {
		return nil, err
	}
	return serverParam, nil
}

func (sc *ServerConfig) GetCompleteParamFilename() string {
	return filepath.Join(sc.ConfigDir, paramFilename)
}

func (sc *ServerConfig) GetCompleteCertFilename() string {
	return filepath.Join(sc.ConfigDir, "cert.pem")
}

func (sc *ServerConfig) GetCompleteKeyFilename() string {
	return filepath.Join(sc.ConfigDir, "key.pem")
}

func (sc *ServerConfig) SaveParam() {
	logrus.Debugf("Save param file: %s", sc.GetCompleteParamFilename())
	rawConfig, err := yaml.Marshal(*sc.ServerParam)
	if err != nil {
		logrus.Fatalf("Unable to serialize param file: %v\n", err)
	}
	err = os.WriteFile(sc.GetCompleteParamFilename(), rawConfig, 0660)
	if err != nil {
		logrus.Fatalf("Unable to save param file: %v\n", err)
	}
}
