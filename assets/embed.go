package assets

import (
	_ "embed"
)

// DefaultCorpus is the built-in category → words mapping, used when no
// corpus file is configured.
//
//go:embed corpus.yaml
var DefaultCorpus []byte
