package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-newsroom/config"
	"github.com/oksasatya/go-newsroom/internal/domain/entity"
)

func testConfig() *config.Config {
	return &config.Config{AppName: "Newsroom", PublicURL: "https://news.test"}
}

func TestRenderWelcome(t *testing.T) {
	d := NewBaseEmailData(testConfig(), Welcome, "Ada", "ada@example.com",
		WithTime(time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)))

	subject, text, html, err := Render(Welcome, ToMap(d))
	require.NoError(t, err)
	require.Equal(t, "Welcome to Newsroom, Ada", subject)
	require.Contains(t, text, "ada@example.com")
	require.Contains(t, text, "01 May 2024, 10:30")
	require.Contains(t, html, `href="https://news.test/login"`)
}

func TestRenderNewCommentEscapesHTML(t *testing.T) {
	n := &entity.NewsItem{ID: "n1", Title: "Rates rise"}
	d := NewBaseEmailData(testConfig(), NewComment, "Jane", "jane@example.com",
		WithNews(n),
		WithComment(entity.Comment{UserName: "Bo", Body: "<b>nice</b>"}))

	subject, text, html, err := Render(NewComment, ToMap(d))
	require.NoError(t, err)
	require.Equal(t, `New comment on "Rates rise"`, subject)
	require.Contains(t, text, "<b>nice</b>")
	require.Contains(t, text, "https://news.test/news/n1")
	require.Contains(t, html, "&lt;b&gt;nice&lt;/b&gt;")
	require.NotContains(t, html, "<b>nice</b>")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, _, _, err := Render("nope", nil)
	require.Error(t, err)
}

func TestDefaultFn(t *testing.T) {
	require.Equal(t, "x", defaultFn("x", ""))
	require.Equal(t, "x", defaultFn("x", nil))
	require.Equal(t, "x", defaultFn("x", 0))
	require.Equal(t, "v", defaultFn("x", "v"))
}
