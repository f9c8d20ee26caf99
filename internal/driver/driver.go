package driver

import (
	"os"

	"brec/internal/ast"
	"brec/internal/diag"
	"brec/internal/field"
	"brec/internal/highlight"
	"brec/internal/observ"
	"brec/internal/parser"
	"brec/internal/source"
)

// Options configures one decoration run.
type Options struct {
	// MaxDiagnostics caps the bag size of each run.
	MaxDiagnostics int
	// Cache skips recomputation for unchanged fixture/source pairs when
	// non-nil.
	Cache *DiskCache
	// Timings enables phase timing collection.
	Timings bool
}

// FieldResult is the decoration of one field.
type FieldResult struct {
	Name   string
	Syntax *highlight.SyntaxInfo
}

// Result is the outcome of decorating one fixture.
type Result struct {
	FixturePath string
	SourcePath  string
	FileSet     *source.FileSet
	FileID      source.FileID
	Fields      []FieldResult
	Bag         *diag.Bag
	FromCache   bool
	Timing      *observ.Report
}

const defaultMaxDiagnostics = 100

// DecorateFile loads one fixture, parses its descriptors against the
// referenced source, and computes every field's highlights. Broken spans
// and unparsable directive values degrade to diagnostics and skipped
// slots; only a missing or unreadable input fails the run outright.
func DecorateFile(fixturePath string, opts Options) (*Result, error) {
	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = defaultMaxDiagnostics
	}
	bag := diag.NewBag(maxDiag)
	timer := observ.NewTimer()

	res := &Result{FixturePath: fixturePath, Bag: bag}

	phase := timer.Begin("load")
	fx, ok := loadFixture(fixturePath, bag)
	if !ok {
		timer.End(phase, "")
		res.Timing = timingReport(timer, opts)
		return res, nil
	}
	res.SourcePath = resolveSource(fixturePath, fx.Source)

	fs := source.NewFileSet()
	fileID, err := fs.Load(res.SourcePath)
	if err != nil {
		timer.End(phase, "")
		bag.Add(diag.NewError(diag.DescMissingSource, source.Span{},
			"failed to load descriptor source: "+err.Error()))
		res.Timing = timingReport(timer, opts)
		return res, nil
	}
	res.FileSet = fs
	res.FileID = fileID
	timer.End(phase, fx.Source)

	if opts.Cache != nil {
		phase = timer.Begin("cache")
		if hit := tryCache(fixturePath, res, opts.Cache); hit {
			timer.End(phase, "hit")
			res.FromCache = true
			res.Timing = timingReport(timer, opts)
			return res, nil
		}
		timer.End(phase, "miss")
	}

	phase = timer.Begin("parse")
	file := fs.Get(fileID)
	arenas := ast.NewBuilder(ast.Hints{Exprs: 64, Types: uint(len(fx.Fields) * 2)})
	sc := &spanChecker{file: file, bag: bag}

	descriptors := make([]field.Descriptor, 0, len(fx.Fields))
	for i := range fx.Fields {
		ft := &fx.Fields[i]
		d := sc.buildDescriptor(ft)
		if ft.Type != nil {
			tySpan := sc.span(*ft.Type, "type")
			if field.Present(tySpan) {
				popts := parser.Options{Reporter: diag.BagReporter{Bag: bag}}
				if ty, ok := parser.ParseTypeSpan(file, tySpan, arenas, popts); ok {
					d.Ty = ty
				}
			}
		}
		descriptors = append(descriptors, d)
	}
	timer.End(phase, "")

	phase = timer.Begin("decorate")
	res.Fields = make([]FieldResult, len(descriptors))
	for i := range descriptors {
		res.Fields[i] = FieldResult{
			Name:   descriptors[i].Name,
			Syntax: highlight.ForField(fs, arenas, &descriptors[i]),
		}
	}
	timer.End(phase, "")

	if opts.Cache != nil && !bag.HasErrors() {
		phase = timer.Begin("store")
		storeCache(fixturePath, res, opts.Cache)
		timer.End(phase, "")
	}

	res.Timing = timingReport(timer, opts)
	return res, nil
}

func timingReport(timer *observ.Timer, opts Options) *observ.Report {
	if !opts.Timings {
		return nil
	}
	report := timer.Report()
	return &report
}

// tryCache rebuilds the result from disk when both inputs are unchanged.
func tryCache(fixturePath string, res *Result, cache *DiskCache) bool {
	key, ok := inputsKey(fixturePath, res)
	if !ok {
		return false
	}
	var payload DiskPayload
	hit, err := cache.Get(key, &payload)
	if err != nil || !hit {
		return false
	}
	res.Fields = make([]FieldResult, len(payload.Fields))
	for i, cf := range payload.Fields {
		res.Fields[i] = FieldResult{Name: cf.Name, Syntax: fromCachedField(cf)}
	}
	return true
}

// storeCache writes the run's highlights back to disk. Failures are
// silent: the cache is an accelerator, never a correctness dependency.
func storeCache(fixturePath string, res *Result, cache *DiskCache) {
	key, ok := inputsKey(fixturePath, res)
	if !ok {
		return
	}
	payload := &DiskPayload{Schema: diskCacheSchemaVersion}
	for _, fr := range res.Fields {
		payload.Fields = append(payload.Fields, toCachedField(fr.Name, fr.Syntax))
	}
	_ = cache.Put(key, payload)
}

func inputsKey(fixturePath string, res *Result) (Digest, bool) {
	fixtureContent, err := os.ReadFile(fixturePath)
	if err != nil {
		return Digest{}, false
	}
	return cacheKey(fixtureContent, res.FileSet.Get(res.FileID).Content), true
}
