// Package ooxml assembles Office Open XML containers (.pptx, .docx): a zip of
// XML parts tied together by [Content_Types].xml and relationship parts.
package ooxml

import (
	"archive/zip"
	"bytes"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"
)

// Relationship types used by the deck and word renderers.
const (
	RelOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	RelCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	RelExtendedProps  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	RelStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	RelNumbering      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering"
	RelSettings       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/settings"
	RelTheme          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	RelSlide          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	RelSlideMaster    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	RelSlideLayout    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	RelPresProps      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/presProps"
	RelViewProps      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/viewProps"
	RelTableStyles    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/tableStyles"
)

// Content types of the parts this package writes.
const (
	TypeRels         = "application/vnd.openxmlformats-package.relationships+xml"
	TypeXML          = "application/xml"
	TypeCoreProps    = "application/vnd.openxmlformats-package.core-properties+xml"
	TypeExtProps     = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	TypeTheme        = "application/vnd.openxmlformats-officedocument.theme+xml"
	TypePresentation = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	TypeSlide        = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	TypeSlideMaster  = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	TypeSlideLayout  = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	TypePresProps    = "application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"
	TypeViewProps    = "application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml"
	TypeTableStyles  = "application/vnd.openxmlformats-officedocument.presentationml.tableStyles+xml"
	TypeDocument     = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	TypeStyles       = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	TypeNumbering    = "application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"
	TypeSettings     = "application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"
)

// Relationship links a source part to a target, relative to the source's folder.
type Relationship struct {
	ID     string
	Type   string
	Target string
}

type part struct {
	name        string
	contentType string
	data        []byte
}

// Package collects parts in memory. Nothing touches disk; Bytes produces the
// finished archive or an error.
type Package struct {
	parts []part
	seen  map[string]bool
	rels  map[string][]Relationship
}

func NewPackage() *Package {
	return &Package{
		seen: make(map[string]bool),
		rels: make(map[string][]Relationship),
	}
}

// AddPart registers a part under its zip path (no leading slash).
func (p *Package) AddPart(name, contentType string, data []byte) error {
	name = strings.TrimPrefix(name, "/")
	if p.seen[name] {
		return fmt.Errorf("duplicate part %q", name)
	}
	p.seen[name] = true
	p.parts = append(p.parts, part{name: name, contentType: contentType, data: data})
	return nil
}

// Relate adds a relationship from source (a part name, or "" for the package
// root) and returns its id.
func (p *Package) Relate(source, relType, target string) string {
	id := fmt.Sprintf("rId%d", len(p.rels[source])+1)
	p.rels[source] = append(p.rels[source], Relationship{ID: id, Type: relType, Target: target})
	return id
}

// relsPath returns where the relationships of source are stored.
func relsPath(source string) string {
	if source == "" {
		return "_rels/.rels"
	}
	dir, file := path.Split(source)
	return dir + "_rels/" + file + ".rels"
}

// AddCoreProperties writes docProps/core.xml and docProps/app.xml and links
// them from the package root.
func (p *Package) AddCoreProperties(title, creator, application string, created time.Time) error {
	stamp := created.UTC().Format(time.RFC3339)
	core := XMLHeader + `<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" ` +
		`xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" ` +
		`xmlns:dcmitype="http://purl.org/dc/dcmitype/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">` +
		`<dc:title>` + Escape(title) + `</dc:title>` +
		`<dc:creator>` + Escape(creator) + `</dc:creator>` +
		`<dcterms:created xsi:type="dcterms:W3CDTF">` + stamp + `</dcterms:created>` +
		`<dcterms:modified xsi:type="dcterms:W3CDTF">` + stamp + `</dcterms:modified>` +
		`</cp:coreProperties>`
	app := XMLHeader + `<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties" ` +
		`xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">` +
		`<Application>` + Escape(application) + `</Application></Properties>`

	if err := p.AddPart("docProps/core.xml", TypeCoreProps, []byte(core)); err != nil {
		return err
	}
	if err := p.AddPart("docProps/app.xml", TypeExtProps, []byte(app)); err != nil {
		return err
	}
	p.Relate("", RelCoreProps, "docProps/core.xml")
	p.Relate("", RelExtendedProps, "docProps/app.xml")
	return nil
}

func (p *Package) contentTypes() []byte {
	var b strings.Builder
	b.WriteString(XMLHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="` + TypeRels + `"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="` + TypeXML + `"/>`)
	for _, pt := range p.parts {
		if pt.contentType == "" || pt.contentType == TypeXML {
			continue
		}
		b.WriteString(`<Override PartName="/` + pt.name + `" ContentType="` + pt.contentType + `"/>`)
	}
	b.WriteString(`</Types>`)
	return []byte(b.String())
}

func relsXML(rels []Relationship) []byte {
	var b strings.Builder
	b.WriteString(XMLHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	for _, r := range rels {
		b.WriteString(`<Relationship Id="` + r.ID + `" Type="` + r.Type + `" Target="` + Escape(r.Target) + `"/>`)
	}
	b.WriteString(`</Relationships>`)
	return []byte(b.String())
}

// Bytes zips the content types, every relationship part and every registered
// part, in a stable order.
func (p *Package) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	write := func(name string, data []byte) error {
		w, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("creating %s: %w", name, err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		return nil
	}

	if err := write("[Content_Types].xml", p.contentTypes()); err != nil {
		return nil, err
	}

	sources := make([]string, 0, len(p.rels))
	for src := range p.rels {
		sources = append(sources, src)
	}
	sort.Strings(sources)
	for _, src := range sources {
		if src != "" && !p.seen[src] {
			return nil, fmt.Errorf("relationships declared for missing part %q", src)
		}
		if err := write(relsPath(src), relsXML(p.rels[src])); err != nil {
			return nil, err
		}
	}

	for _, pt := range p.parts {
		if err := write(pt.name, pt.data); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing archive: %w", err)
	}
	return buf.Bytes(), nil
}
