package web

import (
	"bytes"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestMustAsset(t *testing.T) {
	for _, name := range []string{"index.html", "style.css", "script.js"} {
		data := MustAsset(name)
		assert.NotEqual(t, 0, len(data))
	}

	assert.Equal(t, true, bytes.Contains(MustAsset("index.html"), []byte(`src="/script.js"`)))
}

func TestMustAsset_Missing(t *testing.T) {
	defer func() {
		assert.NotEqual(t, nil, recover())
	}()

	MustAsset("missing.txt")
}
