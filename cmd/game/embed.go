package main

import "embed"

//go:embed configs assets
var gameFS embed.FS
