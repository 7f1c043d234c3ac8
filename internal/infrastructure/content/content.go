// Package content carga las páginas informativas que acompañan al formulario
// ("About this app", "How to use", "Tech stack"). Son markdown con front matter
// YAML; se renderizan a HTML con goldmark y se sanean con bluemonday una sola
// vez al arrancar.
package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

//go:embed pages
var embedded embed.FS

const fallbackLang = "en"

// Placement dónde se muestra la página dentro del formulario.
const (
	PlacementHeader = "header"
	PlacementFooter = "footer"
)

// Page página informativa ya renderizada.
type Page struct {
	Slug      string
	Lang      string
	Title     string
	Order     int
	Variant   string // info | tip | stack (clase CSS del bloque)
	Placement string // header | footer
	HTML      template.HTML
}

type frontMatter struct {
	Title     string `yaml:"title"`
	Order     int    `yaml:"order"`
	Variant   string `yaml:"variant"`
	Placement string `yaml:"placement"`
}

// Library páginas de un idioma, ordenadas por Order.
type Library struct {
	pages []Page
}

// Load lee las páginas del idioma pedido. Si dir está vacío se usan las embebidas.
// Las páginas que no existan en ese idioma se toman del inglés.
func Load(lang, dir string) (*Library, error) {
	var fsys fs.FS
	if strings.TrimSpace(dir) == "" {
		sub, err := fs.Sub(embedded, "pages")
		if err != nil {
			return nil, fmt.Errorf("content: %w", err)
		}
		fsys = sub
	} else {
		fsys = os.DirFS(dir)
	}
	return LoadFS(fsys, lang)
}

// LoadFS variante de Load sobre un fs.FS arbitrario (tests).
func LoadFS(fsys fs.FS, lang string) (*Library, error) {
	lang = normalizeLang(lang)
	md := goldmark.New(goldmark.WithExtensions(extension.Typographer, extension.Linkify))
	policy := bluemonday.UGCPolicy()

	bySlug := map[string]Page{}
	priority := []string{fallbackLang}
	if lang != fallbackLang {
		priority = append(priority, lang) // el idioma pedido sobrescribe al inglés
	}
	for _, candidate := range priority {
		entries, err := fs.ReadDir(fsys, candidate)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("content: leer %s: %w", candidate, err)
		}
		for _, e := range entries {
			if e.IsDir() || path.Ext(e.Name()) != ".md" {
				continue
			}
			page, err := readPage(fsys, md, policy, candidate, e.Name())
			if err != nil {
				return nil, err
			}
			bySlug[page.Slug] = page
		}
	}

	lib := &Library{pages: make([]Page, 0, len(bySlug))}
	for _, p := range bySlug {
		lib.pages = append(lib.pages, p)
	}
	sort.Slice(lib.pages, func(i, j int) bool {
		if lib.pages[i].Order != lib.pages[j].Order {
			return lib.pages[i].Order < lib.pages[j].Order
		}
		return lib.pages[i].Slug < lib.pages[j].Slug
	})
	return lib, nil
}

// Pages devuelve las páginas de una ubicación (header o footer).
func (l *Library) Pages(placement string) []Page {
	if l == nil {
		return nil
	}
	var out []Page
	for _, p := range l.pages {
		if p.Placement == placement {
			out = append(out, p)
		}
	}
	return out
}

// Get busca una página por slug.
func (l *Library) Get(slug string) (Page, bool) {
	if l == nil {
		return Page{}, false
	}
	for _, p := range l.pages {
		if p.Slug == slug {
			return p, true
		}
	}
	return Page{}, false
}

func readPage(fsys fs.FS, md goldmark.Markdown, policy *bluemonday.Policy, lang, name string) (Page, error) {
	file := path.Join(lang, name)
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return Page{}, fmt.Errorf("content: leer %s: %w", file, err)
	}

	fm, body := splitFrontMatter(string(data))
	front := frontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Page{}, fmt.Errorf("content: front matter %s: %w", file, err)
		}
	}

	var buf bytes.Buffer
	if err := md.Convert([]byte(body), &buf); err != nil {
		return Page{}, fmt.Errorf("content: markdown %s: %w", file, err)
	}

	slug := strings.TrimSuffix(name, ".md")
	page := Page{
		Slug:      slug,
		Lang:      lang,
		Title:     strings.TrimSpace(front.Title),
		Order:     front.Order,
		Variant:   firstNonEmpty(strings.TrimSpace(front.Variant), "info"),
		Placement: firstNonEmpty(strings.TrimSpace(front.Placement), PlacementHeader),
		// El HTML ya pasó por la política UGC de bluemonday.
		HTML: template.HTML(policy.SanitizeBytes(buf.Bytes())),
	}
	if page.Title == "" {
		page.Title = prettifySlug(slug)
	}
	return page, nil
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func normalizeLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	if lang == "" {
		return fallbackLang
	}
	return lang
}

func prettifySlug(slug string) string {
	words := strings.Fields(strings.NewReplacer("-", " ", "_", " ").Replace(slug))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
