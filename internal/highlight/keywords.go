package highlight

// keywordList is the fixed classification set: the host type system's
// primitive, container, and prelude names, followed by every directive
// name the record DSL recognizes. Classification is exact and
// case-sensitive. Call-position rules in the visitor override this set.
var keywordList = []string{
	// primitives, containers, prelude
	"Vec", "u8", "u16", "u32", "u64", "u128",
	"i8", "i16", "i32", "i64", "i128",
	"usize", "isize", "f32", "f64",
	"char", "str", "String", "Box", "Default",
	"Self", "super", "Drop", "Send", "Sync", "Sized",
	"Fn", "FnMut", "FnOnce", "From", "Into",
	"Iterator", "IntoIterator", "Ord", "Eq", "PartialEq", "ToString",

	// directive names
	"align_after", "align_before", "args", "args_raw", "assert",
	"big", "calc", "count", "default", "ignore",
	"import", "import_raw", "is_big", "is_little", "little",
	"magic", "map", "offset", "offset_after",
	"pad_after", "pad_before", "pad_size_to", "parse_with", "pre_assert",
	"read", "repr", "restore_position", "return_all_errors",
	"return_unexpected_error", "rw", "seek_before", "temp",
	"try_map", "write", "write_with",
}

var keywords = func() map[string]struct{} {
	m := make(map[string]struct{}, len(keywordList))
	for _, kw := range keywordList {
		m[kw] = struct{}{}
	}
	return m
}()

// IsKeyword reports whether ident belongs to the fixed keyword set.
func IsKeyword(ident string) bool {
	_, ok := keywords[ident]
	return ok
}
