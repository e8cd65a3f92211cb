package egif

import (
	"github.com/mhalvorsen/cutsheet/pkg/eg"
	egerr "github.com/mhalvorsen/cutsheet/pkg/errors"
)

// Parse parses EGIF text into an existential graph.
//
// On success the returned graph satisfies every model invariant; in
// particular each cut is nested per its lexical position and every area
// holds exactly the direct lexical children of its brackets. On failure no
// partial graph is returned. Errors carry the codes SYNTAX_ERROR,
// UNDEFINED_VARIABLE, or DUPLICATE_DEFINITION with an approximate input
// offset.
func Parse(text string) (*eg.Graph, error) {
	toks, err := lex(text)
	if err != nil {
		return nil, err
	}
	if err := checkBalance(toks); err != nil {
		return nil, err
	}

	p := &parser{
		toks:    toks,
		builder: eg.NewBuilder(),
	}
	p.pushScope(p.builder.Sheet())
	if err := p.parseItems(tokEOF); err != nil {
		return nil, err
	}
	return p.builder.Graph()
}

// scope is one frame of the lexical context stack. Variables defined by *x
// and constants first mentioned in this context are registered here;
// resolution of a bound occurrence walks the whole stack from the innermost
// frame outward, never just the immediate one.
type scope struct {
	ctx    eg.ID
	vars   map[string]eg.ID
	consts map[string]eg.ID
}

type parser struct {
	toks    []token
	pos     int
	builder *eg.Builder
	scopes  []scope
}

func (p *parser) peek() token  { return p.toks[p.pos] }
func (p *parser) next() token  { t := p.toks[p.pos]; p.pos++; return t }
func (p *parser) scope() scope { return p.scopes[len(p.scopes)-1] }

func (p *parser) pushScope(ctx eg.ID) {
	p.scopes = append(p.scopes, scope{
		ctx:    ctx,
		vars:   map[string]eg.ID{},
		consts: map[string]eg.ID{},
	})
}

func (p *parser) popScope() {
	p.scopes = p.scopes[:len(p.scopes)-1]
}

// resolveVar looks up a bound variable occurrence through the current
// context and every ancestor context.
func (p *parser) resolveVar(name string) (eg.ID, bool) {
	for i := len(p.scopes) - 1; i >= 0; i-- {
		if id, ok := p.scopes[i].vars[name]; ok {
			return id, true
		}
	}
	return "", false
}

// resolveConst looks up a constant label through the scope chain. Constant
// occurrences with the same label in a scope chain denote the same
// individual, so they share one vertex.
func (p *parser) resolveConst(label string) (eg.ID, bool) {
	for i := len(p.scopes) - 1; i >= 0; i-- {
		if id, ok := p.scopes[i].consts[label]; ok {
			return id, true
		}
	}
	return "", false
}

// defineVar registers a defining occurrence *name in the current context.
// Redefinition anywhere in the scope chain is ambiguous shadowing and is
// rejected.
func (p *parser) defineVar(name string, at int) (eg.ID, error) {
	if err := egerr.ValidateVariableName(name); err != nil {
		return "", err
	}
	if _, exists := p.resolveVar(name); exists {
		return "", egerr.New(egerr.ErrCodeDuplicateDefinition,
			"variable %q redefined at offset %d", name, at)
	}
	v := eg.Generic()
	if err := p.builder.AddVertex(p.scope().ctx, v); err != nil {
		return "", egerr.Wrap(egerr.ErrCodeInternal, err, "add vertex for *%s", name)
	}
	s := p.scope()
	s.vars[name] = v.ID
	return v.ID, nil
}

// constVertex resolves a quoted constant to its vertex, creating one in
// the current context on first mention.
func (p *parser) constVertex(label string) (eg.ID, error) {
	if id, ok := p.resolveConst(label); ok {
		return id, nil
	}
	v := eg.Constant(label)
	if err := p.builder.AddVertex(p.scope().ctx, v); err != nil {
		return "", egerr.Wrap(egerr.ErrCodeInternal, err, "add constant %q", label)
	}
	s := p.scope()
	s.consts[label] = v.ID
	return v.ID, nil
}

// parseItems consumes items until the given closing token kind, which is
// left unconsumed for tokEOF and consumed for tokCutClose.
func (p *parser) parseItems(until tokenKind) error {
	for {
		t := p.peek()
		switch t.kind {
		case until:
			if until != tokEOF {
				p.next()
			}
			return nil
		case tokLParen:
			if err := p.parseRelation(); err != nil {
				return err
			}
		case tokCutOpen:
			if err := p.parseCut(); err != nil {
				return err
			}
		case tokDefining:
			p.next()
			if _, err := p.defineVar(t.text, t.pos); err != nil {
				return err
			}
		case tokString:
			p.next()
			if _, err := p.constVertex(t.text); err != nil {
				return err
			}
		case tokName:
			return egerr.New(egerr.ErrCodeSyntax,
				"bare identifier %q at offset %d: a bound occurrence may only appear as a relation argument", t.text, t.pos)
		default:
			return egerr.New(egerr.ErrCodeSyntax,
				"unexpected %s at offset %d", fmtToken(t), t.pos)
		}
	}
}

// parseRelation parses (Name arg1 ... argN).
func (p *parser) parseRelation() error {
	open := p.next() // consume (

	nameTok := p.next()
	if nameTok.kind != tokName {
		return egerr.New(egerr.ErrCodeSyntax,
			"expected relation name after '(' at offset %d, found %s", open.pos, fmtToken(nameTok))
	}
	if err := egerr.ValidateRelationName(nameTok.text); err != nil {
		return err
	}

	var argv []eg.ID
	for {
		t := p.next()
		switch t.kind {
		case tokRParen:
			e := eg.NewEdge()
			if err := p.builder.AddEdge(p.scope().ctx, e, nameTok.text, argv); err != nil {
				return egerr.Wrap(egerr.ErrCodeInternal, err, "add relation %q", nameTok.text)
			}
			return nil
		case tokDefining:
			id, err := p.defineVar(t.text, t.pos)
			if err != nil {
				return err
			}
			argv = append(argv, id)
		case tokName:
			id, ok := p.resolveVar(t.text)
			if !ok {
				return egerr.New(egerr.ErrCodeUndefinedVariable,
					"variable %q at offset %d has no defining occurrence in scope", t.text, t.pos)
			}
			argv = append(argv, id)
		case tokString:
			id, err := p.constVertex(t.text)
			if err != nil {
				return err
			}
			argv = append(argv, id)
		default:
			return egerr.New(egerr.ErrCodeSyntax,
				"unexpected %s at offset %d inside relation %q", fmtToken(t), t.pos, nameTok.text)
		}
	}
}

// parseCut parses ~[ item item ... ], introducing a negation context
// nested in the current one.
func (p *parser) parseCut() error {
	p.next() // consume ~[
	c := eg.NewCut()
	if err := p.builder.AddCut(p.scope().ctx, c); err != nil {
		return egerr.Wrap(egerr.ErrCodeInternal, err, "add cut")
	}
	p.pushScope(c.ID)
	defer p.popScope()
	return p.parseItems(tokCutClose)
}
