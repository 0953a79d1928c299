// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns the game's language documents into NSIS language
// includes and writes the manifest that registers every converted language.
//
// A source document starts with a header line holding its language code
// (e.g. "de:") followed by `key: "value"` lines. Scanning stops at the first
// line after the header that holds no quote; everything converted up to that
// point is kept. Documents whose code is not in the language table produce
// nothing.
package convert

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/nshlang/internal/langtable"
	"github.com/pdiddy/nshlang/internal/nsis"
	"github.com/pdiddy/nshlang/pkg/types"
)

const utf8BOM = "\uFEFF"

var (
	// ErrEmptyDocument is returned for a source document with no header line.
	ErrEmptyDocument = errors.New("empty document")

	// ErrUnknownCode is returned when the header code is not in the language table.
	ErrUnknownCode = errors.New("unknown language code")
)

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	// Documents lists converted documents in processing order.
	Documents []types.Document

	// Skips lists source documents that produced no output.
	Skips []types.Skip
}

// Converted returns the number of converted documents.
func (r BatchResult) Converted() int { return len(r.Documents) }

// Skipped returns the number of dropped source documents.
func (r BatchResult) Skipped() int { return len(r.Skips) }

// Total returns the number of source documents processed.
func (r BatchResult) Total() int {
	return r.Converted() + r.Skipped()
}

// Languages returns the display names of converted documents in processing order.
func (r BatchResult) Languages() []string {
	names := make([]string, len(r.Documents))
	for i, d := range r.Documents {
		names[i] = d.Name
	}
	return names
}

// ConvertDocument reads a source document from r and returns its converted
// lines. It returns ErrEmptyDocument or ErrUnknownCode (wrapped) when the
// header does not resolve to a language; in that case no output is produced.
// Lines have no length limit.
func ConvertDocument(r io.Reader) (types.Document, error) {
	br := bufio.NewReader(r)

	header, err := readLine(br)
	if errors.Is(err, io.EOF) {
		return types.Document{}, ErrEmptyDocument
	}
	if err != nil {
		return types.Document{}, fmt.Errorf("reading header: %w", err)
	}

	code := headerCode(header)
	name, ok := langtable.Lookup(code)
	if !ok {
		return types.Document{}, fmt.Errorf("%w %q", ErrUnknownCode, code)
	}

	doc := types.Document{
		Code:  code,
		Name:  name,
		Lines: []string{nsis.Header(name)},
	}
	for {
		line, err := readLine(br)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return types.Document{}, fmt.Errorf("reading entries: %w", err)
		}
		if !strings.Contains(line, `"`) {
			break
		}
		doc.Lines = append(doc.Lines, nsis.Entry(line))
	}
	return doc, nil
}

// readLine returns the next line without its line terminator. A final line
// without a newline is returned normally; io.EOF is returned only when no
// input is left.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// headerCode extracts the language code from a header line such as "de:".
func headerCode(line string) string {
	line = strings.TrimPrefix(line, utf8BOM)
	return strings.TrimRight(line, ": \t\r\n")
}

// ConvertFile converts the source document at path.
func ConvertFile(path string) (types.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.Document{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	doc, err := ConvertDocument(f)
	if err != nil {
		return types.Document{}, err
	}
	doc.SourcePath = path
	return doc, nil
}

// WriteDocument writes doc to <outDir>/<doc.Name><ext> and returns the path.
func WriteDocument(doc types.Document, outDir, ext string) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	outPath := filepath.Join(outDir, doc.Name+ext)
	if err := os.WriteFile(outPath, []byte(joinLines(doc.Lines)), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}
	return outPath, nil
}

// Discover returns the files in dir whose names match pattern. Files are
// returned in directory-listing order unless sorted is set. Hidden files
// (leading dot) only match a pattern that itself starts with a dot.
func Discover(dir, pattern string, sorted bool) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	d, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("opening source directory: %w", err)
	}
	defer d.Close()

	// File.ReadDir keeps the order the directory returns, unlike os.ReadDir.
	entries, err := d.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("reading source directory: %w", err)
	}

	hidden := strings.HasPrefix(pattern, ".")

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasPrefix(e.Name(), ".") && !hidden {
			continue
		}
		if ok, _ := filepath.Match(pattern, e.Name()); ok {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	if sorted {
		sort.Strings(paths)
	}
	return paths, nil
}

// ConvertBatch converts every source document selected by cfg, writes the
// converted includes and the manifest, and prints per-document status to w.
// Unrecognized documents are skipped; only filesystem failures on the output
// side are returned as errors.
func ConvertBatch(cfg types.ConversionConfig, w io.Writer) (BatchResult, error) {
	cfg = cfg.WithDefaults()

	var result BatchResult
	paths, err := Discover(cfg.SourceDir, cfg.Pattern, cfg.Sort)
	if err != nil {
		return result, err
	}

	for _, p := range paths {
		if err := convertOne(p, cfg, &result, w); err != nil {
			return result, err
		}
	}

	m := Manifest{
		DefaultLanguage: cfg.DefaultLanguage,
		Languages:       result.Languages(),
		IncludeDir:      cfg.OutputDir,
		Ext:             cfg.OutputExt,
	}
	if err := m.Write(cfg.ManifestPath); err != nil {
		return result, err
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped (total: %d)\n",
		result.Converted(), result.Skipped(), result.Total())
	return result, nil
}

// convertOne converts and writes a single source document, recording the
// outcome in result.
func convertOne(path string, cfg types.ConversionConfig, result *BatchResult, w io.Writer) error {
	base := filepath.Base(path)

	doc, err := ConvertFile(path)
	if err != nil {
		reason := skipReason(err)
		fmt.Fprintf(w, "skipped:   %s (%s)\n", base, reason)
		result.Skips = append(result.Skips, types.Skip{SourcePath: path, Reason: reason})
		return nil
	}

	outPath, err := WriteDocument(doc, cfg.OutputDir, cfg.OutputExt)
	if err != nil {
		return err
	}
	doc.OutputPath = outPath
	result.Documents = append(result.Documents, doc)

	fmt.Fprintf(w, "converted: %s -> %s (%d strings)\n", base, doc.Name, doc.Entries())
	return nil
}

func skipReason(err error) string {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
