package clip

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!doctype html>
<html>
<head><title>Notes on Sleep</title><style>p{color:red}</style></head>
<body>
  <nav><a href="/">home</a></nav>
  <article>
    <h1>Notes on Sleep</h1>
    <p>Eight hours is a <strong>target</strong>, not a rule.</p>
    <ul><li>keep a fixed bedtime</li><li>no screens late</li></ul>
  </article>
  <footer><p>footer text</p></footer>
</body>
</html>`

func TestExtractMainTextPrefersArticle(t *testing.T) {
	title, content, err := ExtractMainText(strings.NewReader(page))
	require.NoError(t, err)

	assert.Equal(t, "Notes on Sleep", title)
	assert.Contains(t, content, "Eight hours is a target, not a rule.")
	assert.Contains(t, content, "keep a fixed bedtime")
	// Scoped to the article, markup gone.
	assert.NotContains(t, content, "footer text")
	assert.NotContains(t, content, "<strong>")
	assert.NotContains(t, content, "color:red")
}

func TestExtractMainTextWholeDocumentFallback(t *testing.T) {
	html := `<html><head><title>Plain</title></head><body><p>no wrapper here</p></body></html>`
	title, content, err := ExtractMainText(strings.NewReader(html))
	require.NoError(t, err)
	assert.Equal(t, "Plain", title)
	assert.Contains(t, content, "no wrapper here")
}

func TestClipRejectsBadURLAndDomain(t *testing.T) {
	cl := New("example.com", 0)

	_, _, err := cl.Clip("::not a url::")
	require.Error(t, err)

	_, _, err = cl.Clip("https://other.test/page")
	assert.ErrorIs(t, err, ErrDomainNotAllowed)
}

func TestGuessTitleFromText(t *testing.T) {
	assert.Equal(t, "First line", guessTitleFromText("First line\nsecond line"))
	long := strings.Repeat("x", 200)
	assert.Len(t, guessTitleFromText(long), 120)
}
