package handler

import (
	"net/http"

	"cryptonews/web"

	"github.com/gin-gonic/gin"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeCSS  = "text/css"
	contentTypeJS   = "application/javascript; charset=utf-8"
)

type StaticHandler struct {
	index  []byte
	style  []byte
	script []byte
}

func NewStaticHandler() *StaticHandler {
	return &StaticHandler{
		index:  web.MustAsset("index.html"),
		style:  web.MustAsset("style.css"),
		script: web.MustAsset("script.js"),
	}
}

func (h *StaticHandler) GetIndex(c *gin.Context) {
	c.Data(http.StatusOK, contentTypeHTML, h.index)
}

func (h *StaticHandler) GetStyle(c *gin.Context) {
	c.Data(http.StatusOK, contentTypeCSS, h.style)
}

func (h *StaticHandler) GetScript(c *gin.Context) {
	c.Data(http.StatusOK, contentTypeJS, h.script)
}
