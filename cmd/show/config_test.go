package show

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/endorses/lippyphone/internal/pkg/cmdutil"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowConfig(t *testing.T) {
	t.Cleanup(viper.Reset)
	cmdutil.SetDefaults()
	viper.Set("tui.theme", "light")

	var buf bytes.Buffer
	require.NoError(t, showConfig(&buf, false))

	out := buf.String()
	assert.Contains(t, out, "Config file: (none")
	assert.Regexp(t, `tui\.theme\s+light`, out)
	assert.Regexp(t, `user\.name\s+You`, out)
	assert.Regexp(t, `notifications\.desktop\s+false`, out)
}

func TestShowConfig_JSON(t *testing.T) {
	t.Cleanup(viper.Reset)
	cmdutil.SetDefaults()

	var buf bytes.Buffer
	require.NoError(t, showConfig(&buf, true))

	var cfg map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &cfg))
	assert.Len(t, cfg, len(cmdutil.Defaults))
	assert.Equal(t, "chats", cfg["tui.start_section"])
	assert.Equal(t, true, cfg["notifications.calls"])
}
