// Package document loads documents and enumerates their interactive elements
package document

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/riordanpawley/keynav/internal/domain"
)

// MaxBodySize caps how much of a document is read
const MaxBodySize = 8 << 20

// Options configures a Loader
type Options struct {
	Width     int           // wrap width in cells
	Timeout   time.Duration // per-request timeout for remote documents
	UserAgent string
}

// Loader reads a reference and produces a laid-out Document
type Loader struct {
	opts     Options
	client   *http.Client
	policy   *bluemonday.Policy
	markdown goldmark.Markdown
	logger   *slog.Logger
}

// NewLoader creates a loader
func NewLoader(opts Options, logger *slog.Logger) *Loader {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	return &Loader{
		opts:     opts,
		client:   &http.Client{Timeout: opts.Timeout},
		policy:   newPolicy(),
		markdown: goldmark.New(goldmark.WithExtensions(extension.Linkify)),
		logger:   logger,
	}
}

// Load reads ref (a file path, file:// URL or http(s) URL) and lays it out
func (l *Loader) Load(ctx context.Context, ref string) (*domain.Document, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, &domain.LoadError{Op: "read", Err: domain.ErrEmptyReference}
	}

	var (
		data   []byte
		format domain.Format
		err    error
	)

	u, perr := url.Parse(ref)
	switch {
	case perr == nil && (u.Scheme == "http" || u.Scheme == "https"):
		data, format, err = l.fetch(ctx, ref)
		if err != nil {
			return nil, &domain.LoadError{Op: "fetch", Ref: ref, Err: err}
		}
	case perr == nil && u.Scheme == "file":
		ref = u.Path
		fallthrough
	case perr != nil || u.Scheme == "" || filepath.VolumeName(ref) != "":
		data, err = readFile(ref)
		if err != nil {
			return nil, &domain.LoadError{Op: "read", Ref: ref, Err: err}
		}
		format = formatFromPath(ref)
	default:
		return nil, &domain.LoadError{Op: "read", Ref: ref, Err: fmt.Errorf("%w: %s", domain.ErrUnsupportedScheme, u.Scheme)}
	}

	doc := &domain.Document{Ref: ref, Format: format}
	switch format {
	case domain.FormatHTML:
		doc.Title, doc.Lines, doc.Elements, err = parseHTML(data, l.opts.Width, l.policy)
		if err != nil {
			return nil, &domain.LoadError{Op: "parse", Ref: ref, Err: err}
		}
	case domain.FormatMarkdown:
		doc.Title, doc.Lines, doc.Elements = parseMarkdown(data, l.markdown)
	default:
		doc.Lines = parseText(data)
	}
	if doc.Title == "" {
		doc.Title = defaultTitle(ref)
	}

	l.logger.Debug("document loaded",
		"ref", ref,
		"format", format,
		"lines", len(doc.Lines),
		"elements", len(doc.Elements))
	return doc, nil
}

func (l *Loader) fetch(ctx context.Context, ref string) ([]byte, domain.Format, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, domain.FormatText, err
	}
	if l.opts.UserAgent != "" {
		req.Header.Set("User-Agent", l.opts.UserAgent)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, domain.FormatText, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, domain.FormatText, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return nil, domain.FormatText, fmt.Errorf("failed to read body: %w", err)
	}

	format := formatFromContentType(resp.Header.Get("Content-Type"))
	if format == domain.FormatText {
		format = formatFromPath(resp.Request.URL.Path)
	}
	return data, format, nil
}

func readFile(name string) ([]byte, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, MaxBodySize))
}

func formatFromPath(p string) domain.Format {
	switch strings.ToLower(path.Ext(filepath.ToSlash(p))) {
	case ".html", ".htm", ".xhtml":
		return domain.FormatHTML
	case ".md", ".markdown", ".mdown":
		return domain.FormatMarkdown
	}
	return domain.FormatText
}

func formatFromContentType(ct string) domain.Format {
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return domain.FormatText
	}
	switch mediaType {
	case "text/html", "application/xhtml+xml":
		return domain.FormatHTML
	case "text/markdown", "text/x-markdown":
		return domain.FormatMarkdown
	}
	return domain.FormatText
}

func defaultTitle(ref string) string {
	if u, err := url.Parse(ref); err == nil && u.Host != "" {
		return u.Host + u.Path
	}
	return filepath.Base(ref)
}

// parseText splits plain text into display lines
func parseText(data []byte) []string {
	s := expandTabs(strings.ReplaceAll(string(data), "\r\n", "\n"))
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
