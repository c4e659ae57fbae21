// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package server exposes reports over HTTP.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ostafen/smushinfo/internal/format"
	"github.com/ostafen/smushinfo/internal/logger"
	"github.com/ostafen/smushinfo/internal/report"
)

const (
	RequestIDHeader = "X-Request-ID"

	DefaultMaxBodySize = 256 << 20
)

type InfoResponse struct {
	RequestID string `json:"request_id"`
	Format    string `json:"format"`
	Report    string `json:"report"`
}

type FormatResponse struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Extensions  []string `json:"extensions"`
	Signatures  []string `json:"signatures"`
}

type Server struct {
	d           *report.Dispatcher
	registry    *format.Registry
	log         *logger.Logger
	maxBodySize int64
}

type Option func(*Server)

func WithMaxBodySize(n int64) Option {
	return func(s *Server) {
		s.maxBodySize = n
	}
}

func New(d *report.Dispatcher, log *logger.Logger, opts ...Option) *Server {
	s := &Server{
		d:           d,
		registry:    format.Default(),
		log:         log,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Discard()
	}
	return s
}

// Handler returns the routes:
//
//	POST /api/v1/info?ext=<ext>  describe the request body
//	GET  /api/v1/formats         list supported formats
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery(), s.requestID())

	v1 := r.Group("/api/v1")
	v1.POST("/info", s.postInfo)
	v1.GET("/formats", s.getFormats)
	return r
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	served := make(chan error, 1)
	go func() {
		served <- srv.ListenAndServe()
	}()
	s.log.Infof("listening on %s", addr)

	select {
	case err := <-served:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-served; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDHeader, id)
		c.Header(RequestIDHeader, id)

		start := time.Now()
		c.Next()

		s.log.With("request_id", id).Infof("%s %s %d %s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

func (s *Server) postInfo(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, s.maxBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": "file too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "unable to read request body"})
		return
	}

	f := s.registry.FromMagic(body)
	if ext, ok := c.GetQuery("ext"); ok {
		f = s.registry.FromExtension(ext)
	}

	c.JSON(http.StatusOK, InfoResponse{
		RequestID: c.GetString(RequestIDHeader),
		Format:    f.String(),
		Report:    s.d.Build(body, f),
	})
}

func (s *Server) getFormats(c *gin.Context) {
	hdrs := s.registry.Headers()

	resp := make([]FormatResponse, len(hdrs))
	for i, hdr := range hdrs {
		sigs := make([]string, len(hdr.Signatures))
		for j, sig := range hdr.Signatures {
			sigs[j] = sig.String()
		}
		resp[i] = FormatResponse{
			Name:        hdr.Format.String(),
			Description: hdr.Description,
			Extensions:  hdr.Exts,
			Signatures:  sigs,
		}
	}
	c.JSON(http.StatusOK, resp)
}
