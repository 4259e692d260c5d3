package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	list "github.com/charmbracelet/bubbles/list"

	"plotmark/internal/series"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

// listFiles returns the files in dir whose names match pattern, sorted.
func listFiles(dir, pattern string) ([]fileItem, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var items []fileItem
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			return nil, fmt.Errorf("files.pattern: %w", err)
		}
		if !ok {
			continue
		}
		items = append(items, fileItem{
			title: name,
			desc:  strings.ToLower(filepath.Ext(name)),
			path:  filepath.Join(dir, name),
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].title < items[j].title })
	return items, nil
}

func (m *Model) refreshDir() {
	files, err := listFiles(m.cwd, m.cfg.Files.Pattern)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	items := make([]list.Item, len(files))
	for i, f := range files {
		items[i] = f
	}
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no matching files in " + m.cwd
	}
}

// loadPath loads supported formats into the model.
func (m *Model) loadPath(p string) {
	d, err := series.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		m.log.Warn().Err(err).Str("path", p).Msg("load failed")
		return
	}
	m.selPath = p
	m.setData(d, filepath.Base(p))
	m.log.Info().Str("path", p).Int("series", len(d.Series)).Int("points", d.Points()).Msg("loaded")
}

func loadedStatus(label string, d series.Data, panels int) string {
	return fmt.Sprintf("loaded: %s  series=%d points=%d panels=%d", label, len(d.Series), d.Points(), panels)
}
