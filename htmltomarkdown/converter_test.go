package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/bookchat"
	"github.com/fwojciec/bookchat/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<h2>Anatomy</h2><p>A humanoid has <strong>two</strong> legs.</p>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "## Anatomy")
		assert.Contains(t, md, "A humanoid has **two** legs.")
	})

	t.Run("converts code blocks with language hint", func(t *testing.T) {
		t.Parallel()

		html := `<pre><code class="language-python">robot.stand()</code></pre>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "```python")
		assert.Contains(t, md, "robot.stand()")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table><thead><tr><th>Joint</th><th>DoF</th></tr></thead><tbody><tr><td>Hip</td><td>3</td></tr></tbody></table>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Joint")
		assert.Contains(t, md, "Hip")
		assert.Contains(t, md, "|")
	})

	t.Run("resolves relative links against domain", func(t *testing.T) {
		t.Parallel()

		html := `<p>See <a href="/docs/physical-systems">Physical Systems</a>.</p>`

		md, err := htmltomarkdown.NewConverter(htmltomarkdown.WithDomain("http://localhost:3000")).Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[Physical Systems](http://localhost:3000/docs/physical-systems)")
	})

	t.Run("collapses runs of blank lines", func(t *testing.T) {
		t.Parallel()

		html := `<p>One</p><br><br><br><br><p>Two</p>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.NotContains(t, md, "\n\n\n")
		assert.Contains(t, md, "One")
		assert.Contains(t, md, "Two")
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("   ")

		assert.Equal(t, bookchat.EINVALID, bookchat.ErrorCode(err))
	})
}
