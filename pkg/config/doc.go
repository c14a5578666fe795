// Package config loads xsltview settings.
//
// Layers are merged in order, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. $XDG_CONFIG_HOME/xsltview/config.toml or config.yaml
//  3. a file passed with --config (TOML or YAML by extension)
//  4. XSLTVIEW_ environment variables, "__" separating sections:
//     XSLTVIEW_REFRESH__DELAY=1s, XSLTVIEW_OUTPUT__TEMP_DIR=/scratch
package config
