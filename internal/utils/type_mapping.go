package utils

// typeMapping is the static SourceLang→TargetLang name table consulted
// by TypeRewriter as its final fallthrough rule.
var typeMapping = map[string]string{
	"Int":       "Int",
	"Int8":      "Byte",
	"Int16":     "Short",
	"Int32":     "Int",
	"Int64":     "Long",
	"UInt":      "UInt",
	"UInt8":     "UByte",
	"UInt16":    "UShort",
	"UInt32":    "UInt",
	"UInt64":    "ULong",
	"Double":    "Double",
	"Float":     "Float",
	"Bool":      "Boolean",
	"String":    "String",
	"Character": "Char",
	"Any":       "Any",
	"AnyObject": "Any",
	"Error":     "Exception",
}

// GetTypeMapping looks up name in the static table. The second return
// value is false when no mapping exists, signalling the caller (the
// TypeRewriter fallthrough rule) to echo the name unchanged.
func GetTypeMapping(name string) (string, bool) {
	v, ok := typeMapping[name]
	return v, ok
}
