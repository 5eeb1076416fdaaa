// Package config manages user-level settings stored at ~/.tablebook/config.yaml.
// Values resolve from, in order of precedence, TABLEBOOK_* environment
// variables (including those loaded from .env files), the config file, and
// built-in defaults such as the backend URL and the suggestion debounce.
package config
