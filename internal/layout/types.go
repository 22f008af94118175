package layout

// Layout is a named, ordered list of relative directory paths plus the
// dependency-installer command that follows scaffolding.
type Layout struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Directories []string `yaml:"directories" json:"directories"`
	Installer   []string `yaml:"installer,omitempty" json:"installer,omitempty"`
}

// DefaultName is the name of the built-in layout.
const DefaultName = "nextjs-ai-blog"

// defaultDirectories is the built-in web-app skeleton, in creation order.
var defaultDirectories = []string{
	"src/app/api/ai/chat",
	"src/app/api/ai/generate",
	"src/app/api/ai/summarize",
	"src/app/blog/[slug]",
	"src/components/ui",
	"src/components/blog",
	"src/components/ai",
	"src/lib/firebase",
	"src/lib/openai",
	"src/types",
	"src/utils",
	"content/posts",
	"tests/unit",
	"tests/e2e",
	".github/workflows",
	"public/images",
}

var defaultInstaller = []string{"npm", "install"}

// Default returns a fresh copy of the built-in layout. Callers may modify
// the result freely.
func Default() *Layout {
	return &Layout{
		Name:        DefaultName,
		Description: "Next.js blog with AI API routes, Firebase and OpenAI clients",
		Directories: append([]string(nil), defaultDirectories...),
		Installer:   append([]string(nil), defaultInstaller...),
	}
}

// Paths returns a copy of the directory list.
func (l *Layout) Paths() []string {
	return append([]string(nil), l.Directories...)
}
