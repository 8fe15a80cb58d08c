package router

// Route is the App Router resolution record: the resolved page plus the
// layout chain (outermost-first, deduplicated) and bound params. Loading,
// Error and NotFound are convention files resolved by nearest-ancestor
// walk once a page is found; each is empty when no such file exists.
type Route struct {
	Page     string
	Layouts  []string
	Params   map[string]any
	Loading  string
	Error    string
	NotFound string
}

// pageExtensions is the page lookup order: first hit wins.
var pageExtensions = []string{".jsx", ".tsx", ".js", ".ts"}

// apiExtensions is the API/route-handler lookup order.
var apiExtensions = []string{".js", ".ts", ".jsx", ".tsx"}

// fallbackExtensions is used only by ResolveFileWithExtension.
var fallbackExtensions = []string{".tsx", ".ts", ".jsx", ".js"}

// conventionLoading, conventionError, conventionNotFound name the three
// convention files resolved by nearest-ancestor lookup after a page match.
const (
	conventionLoading  = "loading"
	conventionError     = "error"
	conventionNotFound  = "not-found"
)
