package cmd

import "strings"

// envKeyReplacer maps tui.start_section to LIPPYPHONE_TUI_START_SECTION
var envKeyReplacer = strings.NewReplacer(".", "_")
