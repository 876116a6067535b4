package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	input := "line one\r\nline two\rline three"

	assert.Equal(t, "line one\nline two\nline three", CleanText(input))
}

func TestCleanText_CollapsesWhitespace(t *testing.T) {
	input := "too    many   spaces\n\n\n\n\nand blank lines"

	assert.Equal(t, "too many spaces\n\nand blank lines", CleanText(input))
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n  \n"))
}

func TestExtractPostingText_UsesJobSelectors(t *testing.T) {
	html := `<html><body>
		<nav>Site navigation</nav>
		<div class="job-description">We are hiring a <b>Go developer</b> to build services.</div>
		<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractPostingText(html)

	require.NoError(t, err)
	assert.Contains(t, text, "Go developer")
	assert.NotContains(t, text, "Site navigation")
	assert.NotContains(t, text, "Copyright")
}

func TestExtractPostingText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain posting text</p></body></html>`

	text, err := ExtractPostingText(html)

	require.NoError(t, err)
	assert.Contains(t, text, "Plain posting text")
}

func TestFetchJobPosting_InvalidURL(t *testing.T) {
	_, err := FetchJobPosting(context.Background(), "not a url")

	require.Error(t, err)
	var fe *FetchError
	assert.ErrorAs(t, err, &fe)
}

func TestFetchJobPosting_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><main>Senior Backend Engineer, Go and Postgres</main></body></html>`))
	}))
	defer server.Close()

	text, err := FetchJobPosting(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Contains(t, text, "Senior Backend Engineer")
}

func TestFetchJobPosting_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := FetchJobPosting(context.Background(), server.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
