package telegram

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/tgrss/pkg/domain"
)

var testNow = time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)

func testBuilder() *ItemBuilder {
	b := NewItemBuilder("")
	b.now = func() time.Time { return testNow }
	return b
}

func TestItemBuilder_Build(t *testing.T) {
	const dateLink = `<a class="tgme_widget_message_date" href="https://t.me/mychan/42"><time datetime="2024-01-15T10:30:00+00:00" class="time">10:30</time></a>`

	t.Run("text with relative link", func(t *testing.T) {
		b := testBubble(t, `<div class="tgme_widget_message_text js-message_text" dir="auto">Hello <a href="/x">world</a></div>`+dateLink)
		item, ok := testBuilder().Build(b, "mychan")
		require.True(t, ok)

		assert.Equal(t, "New post in channel @mychan", item.Title)
		assert.Equal(t, "https://t.me/s/mychan/42", item.Link)
		assert.Equal(t, "https://t.me/s/mychan/42", item.GUID)
		assert.True(t, item.GUIDIsPermaLink)
		assert.Equal(t, `<p>Hello <a href="https://t.me/x" rel="noopener" target="_blank">world</a></p>`, item.Description)
		assert.Contains(t, item.Content, "Hello ")
		assert.Contains(t, item.Content, `href="https://t.me/x"`)
		assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), item.Published.UTC())
		assert.Nil(t, item.Enclosure)
	})

	t.Run("photo with emoji", func(t *testing.T) {
		b := testBubble(t, `<a class="tgme_widget_message_photo_wrap" style="background-image:url('https://cdn/photo1.jpg')"></a>`+
			`<img class="emoji" src="https://cdn/e.png">`+dateLink)
		item, ok := testBuilder().Build(b, "mychan")
		require.True(t, ok)

		photoTag := `<p><img src="https://cdn/photo1.jpg" referrerpolicy="no-referrer"/></p>`
		require.NotNil(t, item.Enclosure)
		assert.Equal(t, domain.Enclosure{URL: "https://cdn/photo1.jpg", Type: "image/jpeg", Length: 0}, *item.Enclosure)
		assert.Equal(t, "<p></p>"+photoTag, item.Description)
		assert.Equal(t, photoTag, item.Content)
	})

	t.Run("no permalink skipped", func(t *testing.T) {
		b := testBubble(t, `<div class="tgme_widget_message_text">orphan</div><time datetime="2024-01-15T10:30:00+00:00" class="time">10:30</time>`)
		_, ok := testBuilder().Build(b, "mychan")
		assert.False(t, ok)
	})

	t.Run("empty permalink skipped", func(t *testing.T) {
		b := testBubble(t, `<a class="tgme_widget_message_date" href="">10:30</a>`)
		_, ok := testBuilder().Build(b, "mychan")
		assert.False(t, ok)
	})

	t.Run("missing time uses now", func(t *testing.T) {
		b := testBubble(t, `<a class="tgme_widget_message_date" href="https://t.me/mychan/1"><time class="time">10:30</time></a>`)
		item, ok := testBuilder().Build(b, "mychan")
		require.True(t, ok)
		assert.Equal(t, testNow, item.Published)
	})

	t.Run("broken time uses now", func(t *testing.T) {
		b := testBubble(t, `<a class="tgme_widget_message_date" href="https://t.me/mychan/1"><time datetime="yesterday" class="time">?</time></a>`)
		item, ok := testBuilder().Build(b, "mychan")
		require.True(t, ok)
		assert.Equal(t, testNow, item.Published)
	})

	t.Run("bare link only", func(t *testing.T) {
		b := testBubble(t, `<a class="tgme_widget_message_date" href="https://t.me/mychan/7"><time datetime="2024-01-15T10:30:00+00:00" class="time">10:30</time></a>`)
		item, ok := testBuilder().Build(b, "mychan")
		require.True(t, ok)
		assert.Equal(t, "<p></p>", item.Description)
		assert.Equal(t, "https://t.me/s/mychan/7", item.Content)
		assert.Nil(t, item.Enclosure)
	})

	t.Run("preview permalink not rewritten twice", func(t *testing.T) {
		b := testBubble(t, `<a class="tgme_widget_message_date" href="https://t.me/s/mychan/8">x</a>`)
		item, ok := testBuilder().Build(b, "mychan")
		require.True(t, ok)
		assert.Equal(t, "https://t.me/s/mychan/8", item.Link)
	})

	t.Run("formatting and line breaks", func(t *testing.T) {
		b := testBubble(t, `<div class="tgme_widget_message_text"><b>Title</b><br/>line <code>x</code> <a href="https://example.com" onclick="y()">site</a></div>`+dateLink)
		item, ok := testBuilder().Build(b, "mychan")
		require.True(t, ok)
		assert.Equal(t, `<p>Title<br/>line x <a href="https://example.com" rel="noopener" target="_blank">site</a></p>`, item.Description)
		assert.Contains(t, item.Content, "<b>Title</b>")
		assert.Contains(t, item.Content, "<code>x</code>")
		assert.NotContains(t, item.Content, "onclick")
	})

	t.Run("relative photo resolved and escaped", func(t *testing.T) {
		b := testBubble(t, `<img src="/file/pic.png"><div style="background-image:url('https://cdn/a.jpg?x=1&amp;y=2')"></div>`+dateLink)
		item, ok := testBuilder().Build(b, "mychan")
		require.True(t, ok)
		require.NotNil(t, item.Enclosure)
		assert.Equal(t, "https://cdn/a.jpg?x=1&y=2", item.Enclosure.URL)
		assert.Equal(t, "image/jpeg", item.Enclosure.Type)
		assert.Contains(t, item.Description, `<img src="https://cdn/a.jpg?x=1&amp;y=2" referrerpolicy="no-referrer"/>`)
		assert.Contains(t, item.Description, `<img src="https://t.me/file/pic.png" referrerpolicy="no-referrer"/>`)
	})

	t.Run("relative and absolute form of one photo", func(t *testing.T) {
		b := testBubble(t, `<a class="tgme_widget_message_photo_wrap" style="background-image:url('/file/a.jpg')"></a>`+
			`<img src="https://t.me/file/a.jpg">`+dateLink)
		item, ok := testBuilder().Build(b, "mychan")
		require.True(t, ok)

		photoTag := `<p><img src="https://t.me/file/a.jpg" referrerpolicy="no-referrer"/></p>`
		assert.Equal(t, "<p></p>"+photoTag, item.Description)
		assert.Equal(t, photoTag, item.Content)
		require.NotNil(t, item.Enclosure)
		assert.Equal(t, "https://t.me/file/a.jpg", item.Enclosure.URL)
	})

	t.Run("script in text is not executable", func(t *testing.T) {
		b := testBubble(t, `<div class="tgme_widget_message_text">hi<script>alert(1)</script><img src="x" onerror="alert(2)"></div>`+dateLink)
		item, ok := testBuilder().Build(b, "mychan")
		require.True(t, ok)
		assert.NotContains(t, item.Description, "<script")
		assert.NotContains(t, item.Description, "onerror")
		assert.NotContains(t, item.Content, "<script")
		assert.NotContains(t, item.Content, "onerror")
	})
}

func TestItemBuilder_BuildAll(t *testing.T) {
	fh, err := os.Open("testdata/channel.html")
	require.NoError(t, err)
	defer fh.Close()

	doc, err := NewDocument(fh)
	require.NoError(t, err)

	items := testBuilder().BuildAll(doc, "mychan")
	require.Len(t, items, 3, "service message without permalink skipped")

	assert.Equal(t, "https://t.me/s/mychan/42", items[0].Link)
	assert.Equal(t, `<p>Hello <a href="https://t.me/x" rel="noopener" target="_blank">world</a></p>`, items[0].Description)
	assert.Nil(t, items[0].Enclosure)

	assert.Equal(t, "https://t.me/s/mychan/43", items[1].Link)
	assert.Equal(t, `<p>Look 😀 at this</p><p><img src="https://cdn/photo1.jpg" referrerpolicy="no-referrer"/></p>`, items[1].Description)
	require.NotNil(t, items[1].Enclosure)
	assert.Equal(t, "https://cdn/photo1.jpg", items[1].Enclosure.URL)
	assert.Equal(t, "image/jpeg", items[1].Enclosure.Type)
	assert.Equal(t, time.Date(2024, 1, 15, 11, 0, 0, 0, time.UTC), items[1].Published.UTC())

	assert.Equal(t, "https://t.me/s/mychan/45", items[2].Link)
	assert.Equal(t, `<p>Read https://example.com/article now</p>`+
		`<p><img src="https://cdn/preview-bg.png" referrerpolicy="no-referrer"/></p>`+
		`<p><img src="https://cdn/preview.webp" referrerpolicy="no-referrer"/></p>`, items[2].Description)
	require.NotNil(t, items[2].Enclosure)
	assert.Equal(t, "image/png", items[2].Enclosure.Type)
	assert.Equal(t, testNow, items[2].Published)

	for _, item := range items {
		assert.Equal(t, "New post in channel @mychan", item.Title)
		assert.Equal(t, item.Link, item.GUID)
	}
}

func TestPreviewLink(t *testing.T) {
	assert.Equal(t, "https://t.me/s/mychan/42", previewLink("https://t.me/mychan/42"))
	assert.Equal(t, "https://t.me/s/mychan/42", previewLink("https://t.me/s/mychan/42"))
	assert.Equal(t, "http://t.me/s/mychan/1", previewLink("http://t.me/mychan/1"))
	assert.Equal(t, "https://example.com/mychan/1", previewLink("https://example.com/mychan/1"))
}
