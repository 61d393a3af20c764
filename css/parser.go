// Package css parses inline style declaration lists, the text carried by an
// HTML style="" attribute, into ordered property declarations with typed
// value accessors.
package css

import (
	"bytes"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses inline style text into structured declarations.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new declaration parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses inline style text into a Style. It never hard-fails:
// malformed or unsupported input is reported through Style.Warnings.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Style {
	st := &Style{
		Declarations: make([]Declaration, 0),
		Warnings:     make([]string, 0),
	}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing style", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, true)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			// End of input or error
			if err := parser.Err(); err != nil && err.Error() != "EOF" {
				st.Warnings = append(st.Warnings, "parse error: "+err.Error())
				p.log.Debug("Style parse error", zap.Error(err))
			}
			return st

		case css.DeclarationGrammar:
			property := strings.ToLower(string(data))
			value := rawValue(parser.Values())
			if value == "" {
				st.Warnings = append(st.Warnings, "empty value for property: "+property)
				continue
			}
			st.Declarations = append(st.Declarations, Declaration{Property: property, Value: value})

		case css.CustomPropertyGrammar:
			// Custom properties (--var) carry no parseable values for us.
			p.log.Debug("Skipping custom property", zap.ByteString("property", data))

		case css.CommentGrammar:
			// Comments between declarations are dropped.

		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			st.Warnings = append(st.Warnings, "unexpected block in inline style: "+string(data))
			p.skipBlock(parser)

		default:
			st.Warnings = append(st.Warnings, "unexpected "+gt.String()+" in inline style")
			p.log.Debug("Skipping grammar", zap.String("grammar", gt.String()), zap.ByteString("data", data))
		}
	}
}

// rawValue rebuilds a value string from CSS tokens. Whitespace and comment
// runs collapse to a single space; leading and trailing runs are dropped.
func rawValue(tokens []css.Token) string {
	var sb strings.Builder
	space := false
	for _, t := range tokens {
		switch t.TokenType {
		case css.WhitespaceToken, css.CommentToken:
			space = sb.Len() > 0
		default:
			if space {
				sb.WriteByte(' ')
				space = false
			}
			sb.Write(t.Data)
		}
	}
	return sb.String()
}

// skipBlock skips tokens until the matching end of a block.
func (p *Parser) skipBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}
