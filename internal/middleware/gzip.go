package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var gzipWriterPool = sync.Pool{
	New: func() any { return gzip.NewWriter(io.Discard) },
}

// gzipBody распаковывает тело запроса и закрывает исходное тело вместе с собой
type gzipBody struct {
	source io.ReadCloser
	reader *gzip.Reader
}

func newGzipBody(source io.ReadCloser) (*gzipBody, error) {
	reader, err := gzip.NewReader(source)
	if err != nil {
		return nil, err
	}
	return &gzipBody{source: source, reader: reader}, nil
}

func (b *gzipBody) Read(p []byte) (int, error) {
	return b.reader.Read(p)
}

func (b *gzipBody) Close() error {
	if err := b.reader.Close(); err != nil {
		return err
	}
	return b.source.Close()
}

// compressible сжимаются только JSON ответы
func compressible(contentType string) bool {
	mediaType, _, _ := strings.Cut(contentType, ";")
	return strings.EqualFold(strings.TrimSpace(mediaType), "application/json")
}

// gzipResponseWriter включает сжатие в момент записи заголовков, если ответ JSON и успешный
type gzipResponseWriter struct {
	http.ResponseWriter
	writer      *gzip.Writer
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	header := w.Header()
	header.Add("Vary", "Accept-Encoding")

	if statusCode < http.StatusMultipleChoices && statusCode != http.StatusNoContent && compressible(header.Get("Content-Type")) {
		header.Set("Content-Encoding", "gzip")
		header.Del("Content-Length")

		w.writer = gzipWriterPool.Get().(*gzip.Writer)
		w.writer.Reset(w.ResponseWriter)
	}

	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.writer != nil {
		return w.writer.Write(data)
	}
	return w.ResponseWriter.Write(data)
}

// finish дописывает gzip поток и возвращает writer в пул
func (w *gzipResponseWriter) finish() error {
	if w.writer == nil {
		return nil
	}
	err := w.writer.Close()
	gzipWriterPool.Put(w.writer)
	w.writer = nil
	return err
}

// GzipMiddleware распаковывает gzip тела запросов и сжимает JSON ответы для клиентов с Accept-Encoding: gzip
func GzipMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
				body, err := newGzipBody(r.Body)
				if err != nil {
					logger.Error("failed to decompress request body",
						zap.Error(err),
						zap.String("uri", r.RequestURI),
						zap.String("method", r.Method),
					)
					writeJSONError(w, http.StatusBadRequest, "failed to decompress request body")
					return
				}
				defer func() {
					if err := body.Close(); err != nil {
						logger.Warn("failed to close request body", zap.Error(err))
					}
				}()
				r.Body = body
				r.Header.Del("Content-Encoding")
			}

			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			gw := &gzipResponseWriter{ResponseWriter: w}
			defer func() {
				if err := gw.finish(); err != nil {
					logger.Error("failed to close gzip writer",
						zap.Error(err),
						zap.String("uri", r.RequestURI),
					)
				}
			}()

			next.ServeHTTP(gw, r)
		})
	}
}
