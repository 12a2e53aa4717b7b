package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/voxforge/storage-api/internal/config"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) write(content string) string {
	path := filepath.Join(s.T().TempDir(), "config.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *ConfigTestSuite) TestLoadFull() {
	path := s.write(`
gateway:
  url: ws://gamehost:9090/v1/peripherals
  client_name: base-controller
redis:
  address: redis.local:6379
  password: hunter2
  db: 3
storage:
  input_location: minecraft:crafter_0
  output_location: minecraft:barrel_0
  period_seconds: 10
  max_stack_override: 64
`)

	cfg, err := config.Load(path)
	s.Require().NoError(err)

	s.Assert().Equal("ws://gamehost:9090/v1/peripherals", cfg.Gateway.URL)
	s.Assert().Equal("base-controller", cfg.Gateway.ClientName)
	s.Assert().Equal("redis.local:6379", cfg.Redis.Address)
	s.Assert().Equal(3, cfg.Redis.DB)
	s.Assert().Equal("minecraft:crafter_0", cfg.Storage.InputLocation)
	s.Assert().Equal(10*time.Second, cfg.Storage.Period())
	s.Assert().Equal(64, cfg.Storage.MaxStackOverride)
}

func (s *ConfigTestSuite) TestLoadDefaults() {
	path := s.write(`
storage:
  input_location: minecraft:crafter_0
  output_location: minecraft:barrel_0
`)

	cfg, err := config.Load(path)
	s.Require().NoError(err)

	s.Assert().Equal("ws://localhost:8080/v1/peripherals", cfg.Gateway.URL)
	s.Assert().Equal("storage-controller", cfg.Gateway.ClientName)
	s.Assert().Equal("localhost:6379", cfg.Redis.Address)
	s.Assert().Equal(5*time.Second, cfg.Storage.Period())
	s.Assert().Equal(0, cfg.Storage.MaxStackOverride)
}

func (s *ConfigTestSuite) TestLoadMissingLocations() {
	testCases := []struct {
		name    string
		content string
	}{
		{
			name: "no input location",
			content: `
storage:
  output_location: minecraft:barrel_0
`,
		},
		{
			name: "no output location",
			content: `
storage:
  input_location: minecraft:crafter_0
`,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := config.Load(s.write(tc.content))
			s.Assert().Error(err)
		})
	}
}

func (s *ConfigTestSuite) TestLoadMissingFile() {
	_, err := config.Load(filepath.Join(s.T().TempDir(), "absent.yaml"))
	s.Assert().Error(err)
}

func (s *ConfigTestSuite) TestLoadMalformedYAML() {
	_, err := config.Load(s.write("storage: ["))
	s.Assert().Error(err)
}
