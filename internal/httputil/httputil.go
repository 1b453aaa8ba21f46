// Package httputil provides HTTP helpers shared by document loading and
// remote matchers, plus the OpenAPI operation method names.
package httputil

// Operation method keys of an OpenAPI path item.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace" // OAS 3.0+ only
	MethodQuery   = "query" // OAS 3.2+ only
)

var methods = map[string]bool{
	MethodGet:     true,
	MethodPut:     true,
	MethodPost:    true,
	MethodDelete:  true,
	MethodOptions: true,
	MethodHead:    true,
	MethodPatch:   true,
	MethodTrace:   true,
	MethodQuery:   true,
}

// IsMethod reports whether key names an operation in a path item.
func IsMethod(key string) bool {
	return methods[key]
}
