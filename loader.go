package pageparse

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/getlantern/mtime"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/transform"

	"github.com/boxesandglue/pageparse/css"
	"github.com/boxesandglue/pageparse/dom"
)

// SourceKind tells which parser reads a source.
type SourceKind int

const (
	// KindUnknown is a source that no parser accepts.
	KindUnknown SourceKind = iota
	// KindHTML is read by the HTML parser.
	KindHTML
	// KindCSS is read by the CSS parser.
	KindCSS
)

func (k SourceKind) String() string {
	switch k {
	case KindHTML:
		return "html"
	case KindCSS:
		return "css"
	}
	return "unknown"
}

// KindOf classifies name by its extension. Only the exact extensions .html
// and .css are recognized.
func KindOf(name string) SourceKind {
	switch filepath.Ext(name) {
	case ".html":
		return KindHTML
	case ".css":
		return KindCSS
	}
	return KindUnknown
}

// Source is the text of one input. Name decides the parser.
type Source struct {
	Name string
	Text string
}

// Loader reads HTML and CSS sources and assembles them into a Document.
type Loader struct {
	log         *zap.Logger
	dir         string
	fileFinder  func(string) (string, error)
	concurrency int
	stripStyles bool
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithDir makes relative file names relative to dir.
func WithDir(dir string) LoaderOption {
	return func(l *Loader) {
		l.dir = dir
	}
}

// WithFileFinder sets a function that maps a file name to a location. When
// it returns an empty location or an error the name is resolved as usual.
func WithFileFinder(fn func(string) (string, error)) LoaderOption {
	return func(l *Loader) {
		l.fileFinder = fn
	}
}

// WithConcurrency limits the number of sources read and parsed at the same
// time. Values below one mean no limit.
func WithConcurrency(n int) LoaderOption {
	return func(l *Loader) {
		l.concurrency = n
	}
}

// WithStyleWhitespaceStripping is passed on to the HTML parser, see
// dom.WithStyleWhitespaceStripping.
func WithStyleWhitespaceStripping(strip bool) LoaderOption {
	return func(l *Loader) {
		l.stripStyles = strip
	}
}

// NewLoader creates a Loader. A nil log discards all messages.
func NewLoader(log *zap.Logger, opts ...LoaderOption) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	l := &Loader{log: log.Named("loader")}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// findFile returns the location of filename. The file finder is asked first,
// otherwise relative names are joined to the loader directory.
func (l *Loader) findFile(filename string) string {
	if l.fileFinder != nil {
		if loc, err := l.fileFinder(filename); loc != "" && err == nil {
			return loc
		}
	}
	if l.dir == "" || filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(l.dir, filename)
}

func checkKinds(names []string) error {
	var err error
	for _, name := range names {
		if KindOf(name) == KindUnknown {
			err = multierr.Append(err, fmt.Errorf("%s: %w", name, ErrUnsupportedFileType))
		}
	}
	return err
}

// Load reads the files named by paths and assembles them like Assemble.
// Every path is classified before any file is read; all paths with an
// unsupported extension are reported in one error.
func (l *Loader) Load(ctx context.Context, paths ...string) (*Document, error) {
	if err := checkKinds(paths); err != nil {
		return nil, err
	}
	sources := make([]Source, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	if l.concurrency > 0 {
		g.SetLimit(l.concurrency)
	}
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			text, err := l.readFile(path)
			if err != nil {
				return err
			}
			sources[i] = Source{Name: path, Text: text}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return l.Assemble(ctx, sources...)
}

func (l *Loader) readFile(name string) (string, error) {
	loc := l.findFile(name)
	data, err := os.ReadFile(loc)
	if err != nil {
		return "", fmt.Errorf("read source %s: %w", name, err)
	}
	contentType := "text/html"
	if KindOf(name) == KindCSS {
		contentType = "text/css"
	}
	// a guess from the first kilobyte only applies to data that is not UTF-8
	enc, encName, certain := charset.DetermineEncoding(data, contentType)
	if encName != "utf-8" && (certain || !utf8.Valid(data)) {
		if data, _, err = transform.Bytes(enc.NewDecoder(), data); err != nil {
			return "", fmt.Errorf("decode source %s as %s: %w", name, encName, err)
		}
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	l.log.Debug("Source read", zap.String("name", name), zap.String("location", loc),
		zap.String("encoding", encName), zap.Int("bytes", len(data)))
	return string(data), nil
}

type parsed struct {
	node  *dom.Node
	sheet *css.Stylesheet
}

// Assemble parses sources and packages the results into a Document. The
// document starts with an empty node and an empty stylesheet; every HTML
// source replaces the node and every CSS source replaces the stylesheet, so
// the last source of each kind wins. Any parse error fails the whole call.
func (l *Loader) Assemble(ctx context.Context, sources ...Source) (*Document, error) {
	names := make([]string, len(sources))
	for i, src := range sources {
		names[i] = src.Name
	}
	if err := checkKinds(names); err != nil {
		return nil, err
	}

	results := make([]parsed, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	if l.concurrency > 0 {
		g.SetLimit(l.concurrency)
	}
	for i, src := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := l.parse(src)
			if err != nil {
				return fmt.Errorf("parse %s: %w", src.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	node := dom.NewEmpty()
	sheet := &css.Stylesheet{}
	var htmlFrom, cssFrom string
	for i, res := range results {
		name := sources[i].Name
		switch {
		case res.node != nil:
			if htmlFrom != "" {
				l.log.Warn("HTML source replaced", zap.String("previous", htmlFrom), zap.String("source", name))
			}
			node, htmlFrom = res.node, name
		case res.sheet != nil:
			if cssFrom != "" {
				l.log.Warn("CSS source replaced", zap.String("previous", cssFrom), zap.String("source", name))
			}
			sheet, cssFrom = res.sheet, name
		}
	}
	return NewDocument(node, sheet), nil
}

func (l *Loader) parse(src Source) (parsed, error) {
	start := mtime.Now()
	kind := KindOf(src.Name)
	var (
		res parsed
		err error
	)
	switch kind {
	case KindHTML:
		p := dom.NewParser(css.NewParser(l.log).Parse,
			dom.WithLogger(l.log),
			dom.WithStyleWhitespaceStripping(l.stripStyles))
		res.node, err = p.Parse(src.Text)
	case KindCSS:
		res.sheet, err = css.NewParser(l.log).Parse(src.Text)
	}
	if err != nil {
		return parsed{}, err
	}
	l.log.Debug("Source parsed", zap.String("name", src.Name), zap.Stringer("kind", kind),
		zap.Duration("elapsed", mtime.Now().Sub(start)))
	return res, nil
}
