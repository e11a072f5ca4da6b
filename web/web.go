// Package web holds the single-page front end, embedded at build time.
package web

import "embed"

//go:embed static
var static embed.FS

// MustAsset returns the named file under static/. It panics if the file is
// missing, which can only happen when the embed directive and the file list
// disagree.
func MustAsset(name string) []byte {
	data, err := static.ReadFile("static/" + name)
	if err != nil {
		panic(err)
	}
	return data
}
