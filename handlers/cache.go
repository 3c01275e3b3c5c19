package handlers

import (
	"bytes"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"saaarchi/cache"
)

const htmlContentType = "text/html; charset=utf-8"

type cacheWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *cacheWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *cacheWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// CachePage serves GET pages from pc, keyed by path and query string, and
// stores successful renders. The path generation is read before the handler
// runs, so a render that raced a write is dropped instead of cached. Cache
// errors degrade to an uncached render.
func CachePage(pc cache.PageCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		path, variant := c.Request.URL.Path, c.Request.URL.RawQuery

		body, ok, err := pc.Get(ctx, path, variant)
		if err != nil {
			log.Printf("Page cache get error: path=%s err=%v", path, err)
		}
		if ok {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, htmlContentType, body)
			c.Abort()
			return
		}

		gen, err := pc.Generation(ctx, path)
		if err != nil {
			log.Printf("Page cache generation error: path=%s err=%v", path, err)
			c.Header("X-Cache", "MISS")
			c.Next()
			return
		}

		w := &cacheWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Header("X-Cache", "MISS")
		c.Next()

		if w.Status() != http.StatusOK || w.body.Len() == 0 {
			return
		}
		if err := pc.Set(ctx, path, variant, gen, w.body.Bytes()); err != nil {
			log.Printf("Page cache set error: path=%s err=%v", path, err)
		}
	}
}
