package assets

import _ "embed"

// Riddles is the default riddle table, ten levels long.
//
//go:embed riddles.yaml
var Riddles []byte
