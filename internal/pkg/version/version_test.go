package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetShortVersion(t *testing.T) {
	prevVersion, prevCommit := Version, GitCommit
	t.Cleanup(func() { Version, GitCommit = prevVersion, prevCommit })

	Version = "1.2.0"
	GitCommit = "unknown"
	assert.Equal(t, "1.2.0", GetShortVersion())

	GitCommit = "0123456789abcdef"
	assert.Equal(t, "1.2.0-0123456", GetShortVersion())
}

func TestGet(t *testing.T) {
	i := Get()
	assert.Equal(t, Version, i.Version)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, i.Platform)
	assert.Contains(t, GetFullVersion(), i.Platform)
}
