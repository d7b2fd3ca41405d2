// Package config handles YAML configuration loading with environment variable substitution.
//
// Configuration files support ${VAR} syntax for environment variable interpolation,
// so the API key is usually supplied as ${LEDGERX_API_KEY}.
package config
