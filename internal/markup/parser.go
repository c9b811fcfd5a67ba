// Package markup parses the constrained markdown subset used by rich-text
// project fields into a renderer-neutral block sequence.
package markup

import (
	"regexp"
	"strings"
)

type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockBullet
	BlockOrdered
	BlockBlank
)

func (k BlockKind) String() string {
	switch k {
	case BlockParagraph:
		return "paragraph"
	case BlockHeading:
		return "heading"
	case BlockBullet:
		return "bullet"
	case BlockOrdered:
		return "ordered"
	case BlockBlank:
		return "blank"
	default:
		return "unknown"
	}
}

// Block is one structural unit of parsed text. Which fields are meaningful
// depends on Kind:
//
//	BlockHeading   Level (2 or 3), Text
//	BlockParagraph Runs
//	BlockBullet    Runs
//	BlockOrdered   Runs, Index (1-based within the current list)
//	BlockBlank     nothing
type Block struct {
	Kind  BlockKind
	Level int
	Text  string
	Runs  []Run
	Index int
}

// Run is a contiguous span of text sharing one bold/italic style.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
}

// PlainText concatenates the text of every run in the block, or returns Text
// for headings.
func (b Block) PlainText() string {
	if b.Kind == BlockHeading {
		return b.Text
	}
	var sb strings.Builder
	for _, r := range b.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

var (
	bulletPattern  = regexp.MustCompile(`^[-*+]\s`)
	orderedPattern = regexp.MustCompile(`^(\d+)\.\s`)
	inlinePattern  = regexp.MustCompile(`\*\*([^*]+)\*\*|\*([^*]+)\*`)
)

// listState tracks ordered-list numbering across lines.
type listState struct {
	counter int
	inList  bool
}

func (s *listState) reset() {
	s.counter = 0
	s.inList = false
}

func (s *listState) next() int {
	if !s.inList {
		s.counter = 0
	}
	s.counter++
	s.inList = true
	return s.counter
}

// Parse converts text into blocks in a single forward pass over its lines.
// It never fails; the empty string yields no blocks.
func Parse(text string) []Block {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	blocks := make([]Block, 0, len(lines))
	var state listState

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			state.reset()
			blocks = append(blocks, Block{Kind: BlockBlank})

		case strings.HasPrefix(trimmed, "## "):
			state.reset()
			blocks = append(blocks, Block{Kind: BlockHeading, Level: 2, Text: trimmed[len("## "):]})

		case strings.HasPrefix(trimmed, "### "):
			state.reset()
			blocks = append(blocks, Block{Kind: BlockHeading, Level: 3, Text: trimmed[len("### "):]})

		case bulletPattern.MatchString(trimmed):
			state.reset()
			loc := bulletPattern.FindStringIndex(trimmed)
			blocks = append(blocks, Block{Kind: BlockBullet, Runs: Inline(trimmed[loc[1]:])})

		case orderedPattern.MatchString(trimmed):
			loc := orderedPattern.FindStringIndex(trimmed)
			blocks = append(blocks, Block{
				Kind:  BlockOrdered,
				Runs:  Inline(trimmed[loc[1]:]),
				Index: state.next(),
			})

		default:
			state.reset()
			blocks = append(blocks, Block{Kind: BlockParagraph, Runs: Inline(trimmed)})
		}
	}

	return blocks
}

// Inline splits text into styled runs. Bold (**x**) wins over italic (*x*)
// when both could start at the same position. Unterminated markers stay in
// the surrounding plain text.
func Inline(text string) []Run {
	if text == "" {
		return nil
	}

	var runs []Run
	pos := 0
	for _, m := range inlinePattern.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > pos {
			runs = append(runs, Run{Text: text[pos:m[0]]})
		}
		switch {
		case m[2] >= 0:
			runs = append(runs, Run{Text: text[m[2]:m[3]], Bold: true})
		case m[4] >= 0:
			runs = append(runs, Run{Text: text[m[4]:m[5]], Italic: true})
		}
		pos = m[1]
	}
	if pos < len(text) {
		runs = append(runs, Run{Text: text[pos:]})
	}
	return runs
}
