package webdav

import (
	"net/http"
	"strconv"
)

const (
	MethodPropfind = "PROPFIND"
	MethodMkcol    = "MKCOL"
	MethodMove     = "MOVE"
	MethodCopy     = "COPY"
)

const (
	HeaderDepth       = "Depth"
	HeaderDestination = "Destination"
)

// DepthInfinity asks the server to walk the whole subtree.
const DepthInfinity = -1

// AllowMethods are the methods used by the client.
var AllowMethods = []string{
	http.MethodGet,
	http.MethodPut,
	http.MethodDelete,
	MethodPropfind,
	MethodMkcol,
	MethodMove,
}

func FormatDepth(depth int) string {
	if depth < 0 {
		return "infinity"
	}
	return strconv.Itoa(depth)
}
