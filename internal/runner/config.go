package runner

import (
	"os"
	"path/filepath"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/twmerge"
	fileutil "github.com/projectdiscovery/utils/file"
)

// defaultGroupConfigPath is used when -group-config is not given
func defaultGroupConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "twmerge", "groups.yaml")
}

// loadGroupConfig reads the group config at path. With an empty path the
// default location is tried and a missing file is not an error.
func loadGroupConfig(path string) (*twmerge.Config, error) {
	if path == "" {
		path = defaultGroupConfigPath()
		if path == "" || !fileutil.FileExists(path) {
			return nil, nil
		}
		gologger.Verbose().Msgf("Using default group config %v", path)
	}
	return twmerge.NewConfig(path)
}
