// Package web carries the embedded single-page practice UI.
package web

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed index.html
var content embed.FS

// Index serves the practice page at the site root.
func Index(ctx *gin.Context) {
	page, err := content.ReadFile("index.html")
	if err != nil {
		ctx.Status(http.StatusInternalServerError)
		return
	}
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", page)
}
