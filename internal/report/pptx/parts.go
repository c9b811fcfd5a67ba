package pptx

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadrage/internal/ooxml"
	"github.com/alexanderramin/cadrage/internal/report"
)

const (
	firstSlideID  = 256
	masterIDValue = 2147483648
	layoutIDValue = 2147483649
)

func namespaces() string {
	return `xmlns:a="` + nsA + `" xmlns:r="` + nsR + `" xmlns:p="` + nsP + `"`
}

func presentationXML(masterRel string, slideRels []string) []byte {
	var b strings.Builder
	b.WriteString(ooxml.XMLHeader)
	b.WriteString(`<p:presentation ` + namespaces() + ` saveSubsetFonts="1">`)
	b.WriteString(fmt.Sprintf(`<p:sldMasterIdLst><p:sldMasterId id="%d" r:id="%s"/></p:sldMasterIdLst>`, masterIDValue, masterRel))
	b.WriteString(`<p:sldIdLst>`)
	for i, rel := range slideRels {
		b.WriteString(fmt.Sprintf(`<p:sldId id="%d" r:id="%s"/>`, firstSlideID+i, rel))
	}
	b.WriteString(`</p:sldIdLst>`)
	b.WriteString(fmt.Sprintf(`<p:sldSz cx="%d" cy="%d"/><p:notesSz cx="6858000" cy="9144000"/>`, SlideWidthEMU, SlideHeightEMU))
	b.WriteString(`</p:presentation>`)
	return []byte(b.String())
}

// masterXML carries the background and the footer strip every slide shares.
func masterXML(style report.StyleConfig) []byte {
	t := newSpTree(style)
	t.shape(rect{0, 5.5, 10, 0.125}, shapeOpts{name: "Footer strip", fill: style.Palette.Primary})

	var b strings.Builder
	b.WriteString(ooxml.XMLHeader)
	b.WriteString(`<p:sldMaster ` + namespaces() + `><p:cSld>`)
	b.WriteString(`<p:bg><p:bgPr>` + solidFill(style.Palette.Background) + `<a:effectLst/></p:bgPr></p:bg>`)
	b.WriteString(t.close())
	b.WriteString(`</p:cSld>`)
	b.WriteString(`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" ` +
		`accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>`)
	b.WriteString(fmt.Sprintf(`<p:sldLayoutIdLst><p:sldLayoutId id="%d" r:id="rId1"/></p:sldLayoutIdLst>`, layoutIDValue))
	b.WriteString(`<p:txStyles><p:titleStyle/><p:bodyStyle/><p:otherStyle/></p:txStyles>`)
	b.WriteString(`</p:sldMaster>`)
	return []byte(b.String())
}

func layoutXML() []byte {
	return []byte(ooxml.XMLHeader + `<p:sldLayout ` + namespaces() + ` preserve="1">` +
		`<p:cSld name="Blank"><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
		`<p:grpSpPr/></p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sldLayout>`)
}

func themeXML(style report.StyleConfig) []byte {
	pal := style.Palette
	font := ooxml.Escape(style.Fonts.Office)
	color := func(name string, c report.Color) string {
		return `<a:` + name + `><a:srgbClr val="` + c.String() + `"/></a:` + name + `>`
	}
	fill := `<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>`
	line := `<a:ln w="9525"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>`

	var b strings.Builder
	b.WriteString(ooxml.XMLHeader)
	b.WriteString(`<a:theme xmlns:a="` + nsA + `" name="Cadrage"><a:themeElements>`)
	b.WriteString(`<a:clrScheme name="Cadrage">`)
	b.WriteString(`<a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1><a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>`)
	b.WriteString(color("dk2", pal.Primary) + color("lt2", pal.Background))
	b.WriteString(color("accent1", pal.Secondary) + color("accent2", pal.Primary) + color("accent3", pal.Muted))
	b.WriteString(color("accent4", "2E9E5B") + color("accent5", "F08C00") + color("accent6", "D64545"))
	b.WriteString(color("hlink", pal.Secondary) + color("folHlink", pal.Muted))
	b.WriteString(`</a:clrScheme>`)
	b.WriteString(`<a:fontScheme name="Cadrage">`)
	for _, kind := range []string{"majorFont", "minorFont"} {
		b.WriteString(`<a:` + kind + `><a:latin typeface="` + font + `"/><a:ea typeface=""/><a:cs typeface=""/></a:` + kind + `>`)
	}
	b.WriteString(`</a:fontScheme>`)
	b.WriteString(`<a:fmtScheme name="Cadrage">`)
	b.WriteString(`<a:fillStyleLst>` + fill + fill + fill + `</a:fillStyleLst>`)
	b.WriteString(`<a:lnStyleLst>` + line + line + line + `</a:lnStyleLst>`)
	b.WriteString(`<a:effectStyleLst>` + strings.Repeat(`<a:effectStyle><a:effectLst/></a:effectStyle>`, 3) + `</a:effectStyleLst>`)
	b.WriteString(`<a:bgFillStyleLst>` + fill + fill + fill + `</a:bgFillStyleLst>`)
	b.WriteString(`</a:fmtScheme></a:themeElements><a:objectDefaults/><a:extraClrSchemeLst/></a:theme>`)
	return []byte(b.String())
}

func presPropsXML() []byte {
	return []byte(ooxml.XMLHeader + `<p:presentationPr ` + namespaces() + `/>`)
}

func viewPropsXML() []byte {
	return []byte(ooxml.XMLHeader + `<p:viewPr ` + namespaces() + `>` +
		`<p:normalViewPr><p:restoredLeft sz="15620"/><p:restoredTop sz="94660"/></p:normalViewPr>` +
		`<p:gridSpacing cx="72008" cy="72008"/></p:viewPr>`)
}

func tableStylesXML() []byte {
	return []byte(ooxml.XMLHeader + `<a:tblStyleLst xmlns:a="` + nsA + `" def="{5C22544A-7EE6-4342-B048-85BDC9FD1C3A}"/>`)
}
