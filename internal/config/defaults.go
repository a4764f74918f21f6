package config

import (
	_ "embed"
)

//go:embed defaults/randscreen.yaml
var defaultYAML []byte
