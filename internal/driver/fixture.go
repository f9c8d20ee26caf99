// Package driver loads field descriptor fixtures, runs decoration over
// them, and fans batches out across workers.
//
// A fixture is a TOML file produced by the directive-parsing stage. It
// names the descriptor source file and lists every annotated field with
// its directive value spans as [start, end) byte pairs into that source.
package driver

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"fortio.org/safecast"

	"brec/internal/diag"
	"brec/internal/field"
	"brec/internal/source"
)

// fixtureSchemaVersion is the fixture format this build reads.
const fixtureSchemaVersion = 1

// spanPair is a [start, end) byte pair as it appears in TOML.
type spanPair [2]uint32

type conditionTOML struct {
	Condition spanPair  `toml:"condition"`
	Alternate *spanPair `toml:"alternate"`
}

type endianTOML struct {
	Conditional bool     `toml:"conditional"`
	Expr        spanPair `toml:"expr"`
}

type mapTOML struct {
	Kind string   `toml:"kind"` // "map" | "try"
	Expr spanPair `toml:"expr"`
}

type argsTOML struct {
	Kind  string     `toml:"kind"` // "list" | "tuple" | "named"
	List  []spanPair `toml:"list"`
	Tuple spanPair   `toml:"tuple"`
	Named []spanPair `toml:"named"`
}

type readTOML struct {
	Kind string   `toml:"kind"` // "default" | "calc" | "parse_with"
	Expr spanPair `toml:"expr"`
}

type assertTOML struct {
	Condition      spanPair  `toml:"condition"`
	ConsequentKind string    `toml:"consequent_kind"` // "" | "message" | "error"
	Consequent     *spanPair `toml:"consequent"`
}

type fieldTOML struct {
	Name string    `toml:"name"`
	Type *spanPair `toml:"type"`

	Count       *spanPair `toml:"count"`
	Offset      *spanPair `toml:"offset"`
	PadBefore   *spanPair `toml:"pad_before"`
	PadAfter    *spanPair `toml:"pad_after"`
	AlignBefore *spanPair `toml:"align_before"`
	AlignAfter  *spanPair `toml:"align_after"`
	SeekBefore  *spanPair `toml:"seek_before"`
	PadSizeTo   *spanPair `toml:"pad_size_to"`
	OffsetAfter *spanPair `toml:"offset_after"`

	If     *conditionTOML `toml:"if"`
	Magic  *spanPair      `toml:"magic"`
	Endian *endianTOML    `toml:"endian"`
	Map    *mapTOML       `toml:"map"`
	Args   *argsTOML      `toml:"args"`
	Read   *readTOML      `toml:"read"`
	Assert []assertTOML   `toml:"assert"`

	KeywordSpans []spanPair `toml:"keyword_spans"`
}

type fixtureTOML struct {
	Schema int         `toml:"schema"`
	Source string      `toml:"source"`
	Fields []fieldTOML `toml:"field"`
}

// loadFixture parses the TOML file at path. Decode errors surface as
// DescBadFixture in the bag and a nil fixture.
func loadFixture(path string, bag *diag.Bag) (*fixtureTOML, bool) {
	var fx fixtureTOML
	if _, err := toml.DecodeFile(path, &fx); err != nil {
		bag.Add(diag.NewError(diag.DescBadFixture, source.Span{},
			fmt.Sprintf("%s: %v", path, err)))
		return nil, false
	}
	if fx.Schema != fixtureSchemaVersion {
		bag.Add(diag.NewError(diag.DescBadFixture, source.Span{},
			fmt.Sprintf("%s: unsupported schema %d (want %d)", path, fx.Schema, fixtureSchemaVersion)))
		return nil, false
	}
	if fx.Source == "" {
		bag.Add(diag.NewError(diag.DescBadFixture, source.Span{},
			path+": fixture does not name a source file"))
		return nil, false
	}
	return &fx, true
}

// resolveSource turns the fixture's source reference into a path relative
// to the fixture file itself.
func resolveSource(fixturePath, src string) string {
	if filepath.IsAbs(src) {
		return src
	}
	return filepath.Join(filepath.Dir(fixturePath), src)
}

// spanChecker validates [start, end) pairs against one source file and
// reports pairs that fall outside it.
type spanChecker struct {
	file *source.File
	bag  *diag.Bag
	name string // current field, for messages
}

// span converts a pair into a Span, or the zero span when the pair is out
// of range. slot names the directive for the diagnostic.
func (sc *spanChecker) span(pair spanPair, slot string) source.Span {
	length, err := safecast.Conv[uint32](len(sc.file.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	if pair[0] > pair[1] || pair[1] > length {
		sc.bag.Add(diag.NewError(diag.DescBadSpan,
			source.Span{File: sc.file.ID},
			fmt.Sprintf("field %q: %s span [%d, %d) outside source (%d bytes)",
				sc.name, slot, pair[0], pair[1], length)))
		return source.Span{}
	}
	return source.Span{File: sc.file.ID, Start: pair[0], End: pair[1]}
}

// optional resolves a pointer pair, mapping nil to the zero span.
func (sc *spanChecker) optional(pair *spanPair, slot string) source.Span {
	if pair == nil {
		return source.Span{}
	}
	return sc.span(*pair, slot)
}

// buildDescriptor converts one TOML field into a descriptor, minus the
// type annotation which the caller parses separately.
func (sc *spanChecker) buildDescriptor(ft *fieldTOML) field.Descriptor {
	sc.name = ft.Name
	d := field.Descriptor{
		Name:        ft.Name,
		Count:       sc.optional(ft.Count, "count"),
		Offset:      sc.optional(ft.Offset, "offset"),
		PadBefore:   sc.optional(ft.PadBefore, "pad_before"),
		PadAfter:    sc.optional(ft.PadAfter, "pad_after"),
		AlignBefore: sc.optional(ft.AlignBefore, "align_before"),
		AlignAfter:  sc.optional(ft.AlignAfter, "align_after"),
		SeekBefore:  sc.optional(ft.SeekBefore, "seek_before"),
		PadSizeTo:   sc.optional(ft.PadSizeTo, "pad_size_to"),
		OffsetAfter: sc.optional(ft.OffsetAfter, "offset_after"),
		Magic:       sc.optional(ft.Magic, "magic"),
	}

	if ft.If != nil {
		d.If = &field.Condition{
			Condition: sc.span(ft.If.Condition, "if.condition"),
			Alternate: sc.optional(ft.If.Alternate, "if.alternate"),
		}
	}
	if ft.Endian != nil {
		d.Endian = field.Endian{
			Conditional: ft.Endian.Conditional,
			Expr:        sc.span(ft.Endian.Expr, "endian.expr"),
		}
	}
	if ft.Map != nil {
		kind := field.MapMap
		if ft.Map.Kind == "try" {
			kind = field.MapTry
		}
		d.Map = field.Map{Kind: kind, Expr: sc.span(ft.Map.Expr, "map.expr")}
	}
	if ft.Args != nil {
		d.Args = sc.buildArgs(ft.Args)
	}
	if ft.Read != nil {
		d.ReadMode = sc.buildReadMode(ft.Read)
	}
	for _, at := range ft.Assert {
		a := field.Assertion{Condition: sc.span(at.Condition, "assert.condition")}
		switch at.ConsequentKind {
		case "message":
			a.ConsequentKind = field.AssertMessage
		case "error":
			a.ConsequentKind = field.AssertError
		}
		a.Consequent = sc.optional(at.Consequent, "assert.consequent")
		d.Assertions = append(d.Assertions, a)
	}

	for i, pair := range ft.KeywordSpans {
		sp := sc.span(pair, fmt.Sprintf("keyword_spans[%d]", i))
		if field.Present(sp) {
			d.KeywordSpans = append(d.KeywordSpans, sp)
		}
	}
	return d
}

func (sc *spanChecker) buildArgs(at *argsTOML) field.PassedArgs {
	switch at.Kind {
	case "list":
		args := field.PassedArgs{Kind: field.ArgsList}
		for i, pair := range at.List {
			args.List = append(args.List, sc.span(pair, fmt.Sprintf("args.list[%d]", i)))
		}
		return args
	case "tuple":
		return field.PassedArgs{Kind: field.ArgsTuple, Tuple: sc.span(at.Tuple, "args.tuple")}
	case "named":
		args := field.PassedArgs{Kind: field.ArgsNamed}
		for i, pair := range at.Named {
			args.Named = append(args.Named, sc.span(pair, fmt.Sprintf("args.named[%d]", i)))
		}
		return args
	default:
		sc.bag.Add(diag.NewError(diag.DescBadFixture,
			source.Span{File: sc.file.ID},
			fmt.Sprintf("field %q: unknown args kind %q", sc.name, at.Kind)))
		return field.PassedArgs{}
	}
}

func (sc *spanChecker) buildReadMode(rt *readTOML) field.ReadMode {
	switch rt.Kind {
	case "default":
		return field.ReadMode{Kind: field.ReadDefault}
	case "calc":
		return field.ReadMode{Kind: field.ReadCalc, Expr: sc.span(rt.Expr, "read.expr")}
	case "parse_with":
		return field.ReadMode{Kind: field.ReadParseWith, Expr: sc.span(rt.Expr, "read.expr")}
	default:
		sc.bag.Add(diag.NewError(diag.DescBadFixture,
			source.Span{File: sc.file.ID},
			fmt.Sprintf("field %q: unknown read kind %q", sc.name, rt.Kind)))
		return field.ReadMode{}
	}
}
