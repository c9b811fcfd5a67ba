package docx

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadrage/internal/ooxml"
	"github.com/alexanderramin/cadrage/internal/report"
)

const (
	nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// A4 in twips.
const (
	pageWidthTwips  = 11906
	pageHeightTwips = 16838
	twipsPerMM      = 56.7
)

func sectionProps(marginMM float64) string {
	m := int(marginMM*twipsPerMM + 0.5)
	return fmt.Sprintf(`<w:sectPr><w:pgSz w:w="%d" w:h="%d"/>`+
		`<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="708" w:footer="708" w:gutter="0"/>`+
		`</w:sectPr>`, pageWidthTwips, pageHeightTwips, m, m, m, m)
}

func paragraphStyle(id, name string, rPr, pPr string) string {
	return `<w:style w:type="paragraph" w:styleId="` + id + `"><w:name w:val="` + name + `"/>` +
		`<w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:qFormat/>` +
		`<w:pPr>` + pPr + `</w:pPr><w:rPr>` + rPr + `</w:rPr></w:style>`
}

func headingStyle(level int, size float64, color report.Color) string {
	return paragraphStyle(
		fmt.Sprintf("Heading%d", level),
		fmt.Sprintf("heading %d", level),
		fmt.Sprintf(`<w:b/><w:color w:val="%s"/><w:sz w:val="%d"/>`, color, halfPoints(size)),
		fmt.Sprintf(`<w:keepNext/><w:spacing w:before="%d" w:after="120"/><w:outlineLvl w:val="%d"/>`, 360-level*60, level-1),
	)
}

func stylesXML(style report.StyleConfig) []byte {
	pal := style.Palette
	sz := style.Sizes
	font := ooxml.Escape(style.Fonts.Office)

	var w ooxml.Writer
	w.Raw(ooxml.XMLHeader)
	w.Raw(`<w:styles xmlns:w="` + nsW + `">`)
	w.Raw(`<w:docDefaults><w:rPrDefault><w:rPr>`)
	w.Raw(`<w:rFonts w:ascii="` + font + `" w:hAnsi="` + font + `" w:cs="` + font + `" w:eastAsia="` + font + `"/>`)
	w.Raw(fmt.Sprintf(`<w:color w:val="%s"/><w:sz w:val="%d"/><w:szCs w:val="%d"/><w:lang w:val="fr-FR"/>`,
		pal.Text, halfPoints(sz.Body), halfPoints(sz.Body)))
	w.Raw(`</w:rPr></w:rPrDefault><w:pPrDefault><w:pPr><w:spacing w:after="120" w:line="264" w:lineRule="auto"/></w:pPr></w:pPrDefault></w:docDefaults>`)

	w.Raw(`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>`)
	w.Raw(paragraphStyle("Title", "Title",
		fmt.Sprintf(`<w:b/><w:color w:val="%s"/><w:sz w:val="%d"/>`, pal.Primary, halfPoints(sz.Title)),
		`<w:jc w:val="center"/><w:spacing w:before="2400" w:after="240"/>`))
	w.Raw(paragraphStyle("Subtitle", "Subtitle",
		fmt.Sprintf(`<w:color w:val="%s"/><w:sz w:val="%d"/>`, pal.Secondary, halfPoints(sz.Heading2)),
		`<w:jc w:val="center"/><w:spacing w:after="720"/>`))
	w.Raw(headingStyle(1, sz.Heading2+4, pal.Primary))
	w.Raw(headingStyle(2, sz.Heading2, pal.Secondary))
	w.Raw(headingStyle(3, sz.Heading3, pal.Secondary))
	w.Raw(headingStyle(4, sz.Body+1, pal.Text))
	w.Raw(paragraphStyle("ListParagraph", "List Paragraph", "", `<w:spacing w:after="40"/><w:contextualSpacing/>`))

	w.Raw(`<w:style w:type="table" w:styleId="ReportTable"><w:name w:val="Report Table"/><w:tblPr><w:tblBorders>`)
	for _, side := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		w.Raw(`<w:` + side + ` w:val="single" w:sz="4" w:space="0" w:color="` + pal.Border.String() + `"/>`)
	}
	w.Raw(`</w:tblBorders><w:tblCellMar><w:left w:w="80" w:type="dxa"/><w:right w:w="80" w:type="dxa"/></w:tblCellMar></w:tblPr></w:style>`)

	w.Raw(`</w:styles>`)
	return w.Bytes()
}

func listLevel(ilvl int, format, text string, indent int) string {
	return fmt.Sprintf(`<w:lvl w:ilvl="%d"><w:start w:val="1"/><w:numFmt w:val="%s"/><w:lvlText w:val="%s"/>`+
		`<w:lvlJc w:val="left"/><w:pPr><w:ind w:left="%d" w:hanging="360"/></w:pPr></w:lvl>`,
		ilvl, format, text, indent)
}

// numberingXML declares the bullet list (numId 1) and orderedLists decimal
// list instances, each restarting at 1.
func numberingXML(orderedLists int) []byte {
	var b strings.Builder
	b.WriteString(ooxml.XMLHeader)
	b.WriteString(`<w:numbering xmlns:w="` + nsW + `">`)

	b.WriteString(`<w:abstractNum w:abstractNumId="0"><w:multiLevelType w:val="hybridMultilevel"/>`)
	b.WriteString(listLevel(0, "bullet", "•", 720))
	b.WriteString(listLevel(1, "bullet", "◦", 1440))
	b.WriteString(`</w:abstractNum>`)

	b.WriteString(`<w:abstractNum w:abstractNumId="1"><w:multiLevelType w:val="hybridMultilevel"/>`)
	b.WriteString(listLevel(0, "decimal", "%1.", 720))
	b.WriteString(listLevel(1, "lowerLetter", "%2.", 1440))
	b.WriteString(`</w:abstractNum>`)

	b.WriteString(fmt.Sprintf(`<w:num w:numId="%d"><w:abstractNumId w:val="0"/></w:num>`, bulletNumID))
	for i := 0; i < orderedLists; i++ {
		b.WriteString(fmt.Sprintf(`<w:num w:numId="%d"><w:abstractNumId w:val="1"/>`+
			`<w:lvlOverride w:ilvl="0"><w:startOverride w:val="1"/></w:lvlOverride></w:num>`, firstOrderedNum+i))
	}

	b.WriteString(`</w:numbering>`)
	return []byte(b.String())
}

func settingsXML() []byte {
	return []byte(ooxml.XMLHeader + `<w:settings xmlns:w="` + nsW + `">` +
		`<w:defaultTabStop w:val="708"/><w:characterSpacingControl w:val="doNotCompress"/>` +
		`<w:themeFontLang w:val="fr-FR"/></w:settings>`)
}
