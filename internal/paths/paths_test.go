package paths

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigDirEnvOverride(t *testing.T) {
	t.Setenv("OPENMW_CONFIG_DIR", "/custom/config")
	assert.Equal(t, "/custom/config", DefaultConfigDir())
}

func TestUserDataDirEnvOverride(t *testing.T) {
	t.Setenv("OPENMW_USERDATA_DIR", "/custom/userdata")
	assert.Equal(t, "/custom/userdata", DefaultUserDataDir())
}

func TestConfigDirFollowsXDG(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG lookup only applies on unix-like platforms")
	}
	t.Setenv("OPENMW_CONFIG_DIR", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	assert.Equal(t, filepath.Join("/xdg/config", "openmw"), DefaultConfigDir())
}

func TestUserDataDirFollowsXDG(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG lookup only applies on unix-like platforms")
	}
	t.Setenv("OPENMW_USERDATA_DIR", "")
	t.Setenv("XDG_DATA_HOME", "/xdg/share")
	assert.Equal(t, filepath.Join("/xdg/share", "openmw"), DefaultUserDataDir())
}

func TestDataLocalDirUnderUserData(t *testing.T) {
	t.Setenv("OPENMW_USERDATA_DIR", "/custom/userdata")
	assert.Equal(t, filepath.Join("/custom/userdata", "data"), DefaultDataLocalDir())
}
