package pubfolio

import "embed"

// EmbeddedAssets contains static assets shipped with pubfolio: base.css,
// the layout stylesheet built on the theme custom properties.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
