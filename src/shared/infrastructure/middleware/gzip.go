package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// GzipOptions opciones del middleware de compresión de respuestas
type GzipOptions struct {
	ExcludedPaths []string
}

// ForceGzipOptions opciones del middleware de compresión forzada
type ForceGzipOptions struct {
	CheckClientSupport bool
}

// GzipReader descomprime bodies entrantes con Content-Encoding: gzip
func GzipReader() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.Contains(c.GetHeader("Content-Encoding"), "gzip") {
			reader, err := gzip.NewReader(c.Request.Body)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"error": "Invalid gzip body",
				})
				return
			}
			defer reader.Close()
			c.Request.Body = io.NopCloser(reader)
			c.Request.Header.Del("Content-Encoding")
			c.Request.Header.Del("Content-Length")
			c.Request.ContentLength = -1
		}
		c.Next()
	}
}

// GzipMiddleware comprime respuestas cuando el cliente lo soporta
func GzipMiddleware(opts GzipOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isPathExcluded(c.Request.URL.Path, opts.ExcludedPaths) {
			c.Next()
			return
		}
		if !clientAcceptsGzip(c.Request) {
			c.Next()
			return
		}

		compressResponse(c)
	}
}

// ForceGzipMiddleware fuerza compresión en rutas específicas
func ForceGzipMiddleware(opts ForceGzipOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if opts.CheckClientSupport && !clientAcceptsGzip(c.Request) {
			c.Next()
			return
		}

		compressResponse(c)
	}
}

// gzipWriter envuelve el ResponseWriter de Gin con un gzip.Writer
type gzipWriter struct {
	gin.ResponseWriter
	writer *gzip.Writer
}

func (g *gzipWriter) Write(data []byte) (int, error) {
	return g.writer.Write(data)
}

func (g *gzipWriter) WriteString(s string) (int, error) {
	return g.writer.Write([]byte(s))
}

// compressResponse instala el writer comprimido para el resto del pipeline
func compressResponse(c *gin.Context) {
	gz := gzip.NewWriter(c.Writer)

	c.Header("Content-Encoding", "gzip")
	c.Header("Vary", "Accept-Encoding")
	c.Writer = &gzipWriter{ResponseWriter: c.Writer, writer: gz}

	defer func() {
		gz.Close()
		c.Header("Content-Length", "")
	}()

	c.Next()
}

// clientAcceptsGzip verifica el header Accept-Encoding
func clientAcceptsGzip(req *http.Request) bool {
	return strings.Contains(req.Header.Get("Accept-Encoding"), "gzip")
}

// isPathExcluded verifica si la ruta está en la lista de exclusión
func isPathExcluded(path string, excluded []string) bool {
	for _, p := range excluded {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
