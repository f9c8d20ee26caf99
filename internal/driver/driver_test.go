package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"brec/internal/diag"
	"brec/internal/highlight"
)

// writeFixturePair drops a source file and its fixture into dir and
// returns the fixture path.
func writeFixturePair(t *testing.T, dir, name, src, fixture string) string {
	t.Helper()
	srcPath := filepath.Join(dir, name+".brec")
	if err := os.WriteFile(srcPath, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	fixturePath := filepath.Join(dir, name+FixtureSuffix)
	if err := os.WriteFile(fixturePath, []byte(fixture), 0o644); err != nil {
		t.Fatal(err)
	}
	return fixturePath
}

// The source line is:
//
//	count: u32 = calc(len(data))
//
// with "count" at 0..5, "u32" at 7..10, and "len(data)" at 18..27.
const simpleSource = "count: u32 = calc(len(data))\n"

const simpleFixture = `schema = 1
source = "simple.brec"

[[field]]
name = "count"
type = [7, 10]
keyword_spans = [[0, 5]]

[field.read]
kind = "calc"
expr = [18, 27]
`

func TestDecorateFileSimple(t *testing.T) {
	dir := t.TempDir()
	fixturePath := writeFixturePair(t, dir, "simple", simpleSource, simpleFixture)

	res, err := DecorateFile(fixturePath, Options{})
	if err != nil {
		t.Fatalf("DecorateFile: %v", err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", res.Bag.Items())
	}
	if len(res.Fields) != 1 || res.Fields[0].Name != "count" {
		t.Fatalf("fields = %+v", res.Fields)
	}

	ls := res.Fields[0].Syntax.Line(1)
	if ls == nil {
		t.Fatal("no highlights on line 1")
	}
	want := []highlight.Highlight{
		{Start: 0, End: 5, Color: highlight.ColorKeyword},    // directive name span
		{Start: 7, End: 10, Color: highlight.ColorKeyword},   // u32
		{Start: 18, End: 21, Color: highlight.ColorFunction}, // len
	}
	if len(ls.Highlights) != len(want) {
		t.Fatalf("highlights = %+v, want %+v", ls.Highlights, want)
	}
	for i, hl := range ls.Highlights {
		if hl != want[i] {
			t.Errorf("highlight[%d] = %+v, want %+v", i, hl, want[i])
		}
	}
}

func TestDecorateFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	fixturePath := filepath.Join(dir, "gone"+FixtureSuffix)
	err := os.WriteFile(fixturePath, []byte("schema = 1\nsource = \"gone.brec\"\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	res, err := DecorateFile(fixturePath, Options{})
	if err != nil {
		t.Fatalf("DecorateFile: %v", err)
	}
	if !hasCode(res.Bag, diag.DescMissingSource) {
		t.Errorf("expected DescMissingSource, got %+v", res.Bag.Items())
	}
}

func TestDecorateFileBadTOML(t *testing.T) {
	dir := t.TempDir()
	fixturePath := filepath.Join(dir, "bad"+FixtureSuffix)
	if err := os.WriteFile(fixturePath, []byte("source = [not toml"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := DecorateFile(fixturePath, Options{})
	if err != nil {
		t.Fatalf("DecorateFile: %v", err)
	}
	if !hasCode(res.Bag, diag.DescBadFixture) {
		t.Errorf("expected DescBadFixture, got %+v", res.Bag.Items())
	}
}

func TestDecorateFileWrongSchema(t *testing.T) {
	dir := t.TempDir()
	fixturePath := writeFixturePair(t, dir, "old", "x\n",
		"schema = 99\nsource = \"old.brec\"\n")

	res, err := DecorateFile(fixturePath, Options{})
	if err != nil {
		t.Fatalf("DecorateFile: %v", err)
	}
	if !hasCode(res.Bag, diag.DescBadFixture) {
		t.Errorf("expected DescBadFixture for schema mismatch, got %+v", res.Bag.Items())
	}
}

func TestDecorateFileBadSpan(t *testing.T) {
	dir := t.TempDir()
	fixture := `schema = 1
source = "short.brec"

[[field]]
name = "x"
count = [5, 500]
`
	fixturePath := writeFixturePair(t, dir, "short", "x: u8\n", fixture)

	res, err := DecorateFile(fixturePath, Options{})
	if err != nil {
		t.Fatalf("DecorateFile: %v", err)
	}
	if !hasCode(res.Bag, diag.DescBadSpan) {
		t.Errorf("expected DescBadSpan, got %+v", res.Bag.Items())
	}
	// The broken slot is dropped; the field itself survives.
	if len(res.Fields) != 1 {
		t.Errorf("fields = %+v", res.Fields)
	}
}

func TestDecorateFileUnparsableDirectiveIsSilent(t *testing.T) {
	// Attribute values that fail to parse contribute nothing and raise
	// nothing. The count span below covers "+ +".
	src := "x: u8 = + +\n"
	fixture := `schema = 1
source = "junk.brec"

[[field]]
name = "x"
type = [3, 5]
count = [8, 11]
`
	dir := t.TempDir()
	fixturePath := writeFixturePair(t, dir, "junk", src, fixture)

	res, err := DecorateFile(fixturePath, Options{})
	if err != nil {
		t.Fatalf("DecorateFile: %v", err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", res.Bag.Items())
	}
	ls := res.Fields[0].Syntax.Line(1)
	if ls == nil || len(ls.Highlights) != 1 {
		t.Fatalf("want only the u8 keyword highlight, got %+v", ls)
	}
	if ls.Highlights[0] != (highlight.Highlight{Start: 3, End: 5, Color: highlight.ColorKeyword}) {
		t.Errorf("highlight = %+v", ls.Highlights[0])
	}
}

func TestDecorateFileTimings(t *testing.T) {
	dir := t.TempDir()
	fixturePath := writeFixturePair(t, dir, "simple", simpleSource, simpleFixture)

	res, err := DecorateFile(fixturePath, Options{Timings: true})
	if err != nil {
		t.Fatalf("DecorateFile: %v", err)
	}
	if res.Timing == nil || len(res.Timing.Phases) == 0 {
		t.Fatal("expected timing report")
	}
	names := make(map[string]bool)
	for _, p := range res.Timing.Phases {
		names[p.Name] = true
	}
	for _, want := range []string{"load", "parse", "decorate"} {
		if !names[want] {
			t.Errorf("missing phase %q in %+v", want, res.Timing.Phases)
		}
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}

	key := cacheKey([]byte("fixture"), []byte("source"))
	payload := &DiskPayload{
		Schema: diskCacheSchemaVersion,
		Fields: []CachedField{{
			Name: "count",
			Lines: []CachedLine{{
				Line:       3,
				Highlights: []CachedHighlight{{Start: 2, End: 5, Color: uint8(highlight.ColorNumber)}},
			}},
		}},
	}
	if err := cache.Put(key, payload); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var got DiskPayload
	hit, err := cache.Get(key, &got)
	if err != nil || !hit {
		t.Fatalf("Get: hit=%v err=%v", hit, err)
	}
	if len(got.Fields) != 1 || got.Fields[0].Name != "count" {
		t.Fatalf("payload = %+v", got)
	}

	info := fromCachedField(got.Fields[0])
	ls := info.Line(3)
	if ls == nil || ls.Highlights[0] != (highlight.Highlight{Start: 2, End: 5, Color: highlight.ColorNumber}) {
		t.Errorf("rebuilt info = %+v", ls)
	}

	var miss DiskPayload
	hit, err = cache.Get(cacheKey([]byte("other"), []byte("inputs")), &miss)
	if err != nil {
		t.Fatalf("Get miss: %v", err)
	}
	if hit {
		t.Error("unexpected cache hit")
	}
}

func TestDecorateFileUsesCache(t *testing.T) {
	dir := t.TempDir()
	fixturePath := writeFixturePair(t, dir, "simple", simpleSource, simpleFixture)
	cache, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}

	first, err := DecorateFile(fixturePath, Options{Cache: cache})
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.FromCache {
		t.Fatal("first run must not hit the cache")
	}

	second, err := DecorateFile(fixturePath, Options{Cache: cache})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !second.FromCache {
		t.Fatal("second run must hit the cache")
	}

	a := first.Fields[0].Syntax.Line(1)
	b := second.Fields[0].Syntax.Line(1)
	if len(a.Highlights) != len(b.Highlights) {
		t.Fatalf("cached highlights differ: %+v vs %+v", a, b)
	}
	for i := range a.Highlights {
		if a.Highlights[i] != b.Highlights[i] {
			t.Errorf("highlight[%d]: %+v vs %+v", i, a.Highlights[i], b.Highlights[i])
		}
	}
}

func TestDecorateDir(t *testing.T) {
	dir := t.TempDir()
	for i := range 3 {
		name := fmt.Sprintf("rec%d", i)
		fixture := fmt.Sprintf("schema = 1\nsource = %q\n\n[[field]]\nname = \"f\"\ntype = [3, 6]\n", name+".brec")
		writeFixturePair(t, dir, name, "f: u32\n", fixture)
	}

	events := make(chan Event, 16)
	results, err := DecorateDir(context.Background(), dir, DirOptions{
		Options: Options{},
		Jobs:    2,
		Events:  events,
	})
	if err != nil {
		t.Fatalf("DecorateDir: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d", len(results))
	}
	// Sorted fixture order is stable across runs.
	for i, res := range results {
		wantSuffix := fmt.Sprintf("rec%d%s", i, FixtureSuffix)
		if filepath.Base(res.FixturePath) != wantSuffix {
			t.Errorf("result[%d] = %s, want %s", i, res.FixturePath, wantSuffix)
		}
		if res.Bag.HasErrors() {
			t.Errorf("result[%d] diagnostics: %+v", i, res.Bag.Items())
		}
	}

	close(events)
	count := 0
	for ev := range events {
		if ev.Total != 3 {
			t.Errorf("event total = %d", ev.Total)
		}
		count++
	}
	if count == 0 {
		t.Error("no progress events received")
	}
}

func TestDecorateDirEmpty(t *testing.T) {
	results, err := DecorateDir(context.Background(), t.TempDir(), DirOptions{})
	if err != nil {
		t.Fatalf("DecorateDir: %v", err)
	}
	if results != nil {
		t.Errorf("results = %+v, want nil", results)
	}
}

func TestDecorateDirCanceled(t *testing.T) {
	dir := t.TempDir()
	writeFixturePair(t, dir, "rec", "f: u8\n",
		"schema = 1\nsource = \"rec.brec\"\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := DecorateDir(ctx, dir, DirOptions{})
	if err == nil {
		t.Fatal("expected context error")
	}
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}
