// Package locales embeds the translation files of the inquiry form.
package locales

import "embed"

//go:embed *.yaml
var FS embed.FS
