package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/logger"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
)

const masked = "********"

type LoggerConfig struct {
	Log    *logger.Logger
	Colors bool
	// MaxBodySize caps how much of a request or error response is logged.
	MaxBodySize int
	SkipPaths   []string
	SkipPrefix  []string
}

func DefaultLoggerConfig(l *logger.Logger) LoggerConfig {
	return LoggerConfig{
		Log:         l.Named("http"),
		Colors:      true,
		MaxBodySize: 1024,
		SkipPaths:   []string{"/health", "/metrics", "/ping"},
		SkipPrefix:  []string{"/swagger/"},
	}
}

// Logger writes one access line per request, tagged with the admin who made
// it. Request bodies and error responses are logged with credentials masked.
func Logger(l *logger.Logger) gin.HandlerFunc {
	return LoggerWithConfig(DefaultLoggerConfig(l))
}

func LoggerWithConfig(config LoggerConfig) gin.HandlerFunc {
	skip := make(map[string]bool, len(config.SkipPaths))
	for _, p := range config.SkipPaths {
		skip[p] = true
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if skip[path] || hasAnyPrefix(path, config.SkipPrefix) {
			c.Next()
			return
		}

		start := time.Now()
		l := config.Log
		body := readBody(c, config.MaxBodySize)

		l.Debug("→ %s %s from %s", c.Request.Method, path, c.ClientIP())
		if q := c.Request.URL.RawQuery; q != "" {
			l.Debug("    query: %s", truncate(q, 120))
		}
		if body != "" {
			l.Info("    body: %s", body)
		}

		w := &captureWriter{ResponseWriter: c.Writer, limit: config.MaxBodySize}
		c.Writer = w
		c.Next()

		status := w.Status()
		line := fmt.Sprintf("%s %s %s %s %v %s",
			paint(config.Colors, statusColor(status), fmt.Sprintf("%d", status)),
			c.Request.Method,
			paint(config.Colors, colorBlue, path),
			paint(config.Colors, colorGray, "by "+actor(c)),
			time.Since(start).Round(time.Microsecond),
			formatSize(w.Size()),
		)

		switch {
		case status >= 500:
			l.Error("← %s", line)
		case status >= 400:
			l.Warn("← %s", line)
		default:
			l.Info("← %s", line)
		}

		if status >= 400 && w.body.Len() > 0 {
			l.Info("    response: %s", sanitizeJSON(w.body.Bytes(), config.MaxBodySize))
		}
		for _, e := range c.Errors {
			l.Warn("    error: %v", e.Err)
		}
	}
}

// actor names the logged-in admin, or "anonymous" before the session guard ran.
func actor(c *gin.Context) string {
	email := c.GetString("email")
	if email == "" {
		return "anonymous"
	}
	if role := c.GetString("role"); role != "" {
		return email + " (" + role + ")"
	}
	return email
}

// readBody returns the sanitised request body and restores it for the handler.
func readBody(c *gin.Context, limit int) string {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return ""
	}
	if c.Request.ContentLength > int64(limit) {
		return "[body too large to log]"
	}
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, int64(limit)+1))
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(data))

	if !strings.Contains(c.GetHeader("Content-Type"), "application/json") {
		return fmt.Sprintf("[%s, %s]", c.GetHeader("Content-Type"), formatSize(len(data)))
	}
	return sanitizeJSON(data, limit)
}

type captureWriter struct {
	gin.ResponseWriter
	body  bytes.Buffer
	limit int
}

func (w *captureWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	if room := w.limit - w.body.Len(); room > 0 {
		if n < room {
			room = n
		}
		w.body.Write(b[:room])
	}
	return n, err
}

func sanitizeJSON(data []byte, limit int) string {
	var v interface{}
	if json.Unmarshal(data, &v) != nil {
		return truncate(string(data), 200)
	}
	out, err := json.Marshal(mask(v))
	if err != nil {
		return truncate(string(data), 200)
	}
	return truncate(string(out), limit)
}

func mask(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			if isSensitiveField(k) {
				out[k] = masked
				continue
			}
			out[k] = mask(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = mask(val)
		}
		return out
	default:
		return v
	}
}

func isSensitiveField(field string) bool {
	field = strings.ToLower(field)
	for _, s := range []string{"password", "token", "secret", "apikey", "api_key", "authorization", "cookie"} {
		if strings.Contains(field, s) {
			return true
		}
	}
	return false
}

func statusColor(status int) string {
	switch {
	case status >= 500:
		return colorRed
	case status >= 400:
		return colorYellow
	case status >= 300:
		return colorCyan
	default:
		return colorGreen
	}
}

func paint(enabled bool, color, s string) string {
	if !enabled {
		return s
	}
	return color + s + colorReset
}

func formatSize(n int) string {
	switch {
	case n < 0:
		return "0B"
	case n < 1024:
		return fmt.Sprintf("%dB", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1fKB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1fMB", float64(n)/(1024*1024))
	}
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
