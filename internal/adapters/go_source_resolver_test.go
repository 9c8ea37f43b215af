package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const messagesSource = `package messages

type Message string

const (
	Greeting Message = "greeting"
	Farewell
	unrelated = 3
)

var Title = Message("title")

type Labels struct {
	Header string
	Footer string
}

func (Labels) Render() string { return "" }

type Catalog interface {
	Lookup(key string) string
}

var Default = &Labels{}
`

func newGoSourceFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "app", "messages")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "messages.go"), []byte(messagesSource), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "messages_test.go"), []byte("package messages\n\ntype TestOnly struct{}\n"), 0644))
	return root
}

func TestGoSourceResolverAdapter_Classes(t *testing.T) {
	resolver := NewGoSourceResolverAdapter(newGoSourceFixture(t))

	tests := []struct {
		class string
		want  bool
	}{
		{"app.messages.Message", true},
		{"app.messages.Labels", true},
		{"app.messages.Catalog", true},
		{"app.messages.TestOnly", false},
		{"app.messages.Missing", false},
		{"app.other.Message", false},
		{"app.messages.Labels$Inner", false},
	}
	for _, tt := range tests {
		exists, err := resolver.ClassExists(tt.class)
		require.NoError(t, err)
		assert.Equal(t, tt.want, exists, tt.class)
	}
}

func TestGoSourceResolverAdapter_Members(t *testing.T) {
	resolver := NewGoSourceResolverAdapter(newGoSourceFixture(t))

	tests := []struct {
		class  string
		member string
		want   bool
	}{
		{"app.messages.Message", "Greeting", true},
		{"app.messages.Message", "Farewell", true},
		{"app.messages.Message", "Title", true},
		{"app.messages.Message", "unrelated", false},
		{"app.messages.Labels", "Header", true},
		{"app.messages.Labels", "Render", true},
		{"app.messages.Labels", "Default", true},
		{"app.messages.Labels", "Missing", false},
		{"app.messages.Catalog", "Lookup", true},
	}
	for _, tt := range tests {
		found, err := resolver.MemberExists(tt.class, tt.member)
		require.NoError(t, err)
		assert.Equal(t, tt.want, found, "%s.%s", tt.class, tt.member)
	}
}

func TestGoSourceResolverAdapter_ParseFailureIsError(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "broken")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.go"), []byte("package broken\n\nfunc {"), 0644))

	resolver := NewGoSourceResolverAdapter(root)
	_, err := resolver.ClassExists("broken.Type")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to index go package")
}

func TestGoSourceResolverAdapter_CachesPackages(t *testing.T) {
	root := newGoSourceFixture(t)
	resolver := NewGoSourceResolverAdapter(root)

	exists, err := resolver.ClassExists("app.messages.Message")
	require.NoError(t, err)
	require.True(t, exists)

	require.NoError(t, os.RemoveAll(filepath.Join(root, "app")))
	exists, err = resolver.ClassExists("app.messages.Message")
	require.NoError(t, err)
	assert.True(t, exists, "indexed packages are served from cache")
}
