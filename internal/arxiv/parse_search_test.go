package arxiv

import (
	"strings"
	"testing"
)

// sampleSearchHTML carries three result blocks; the second is malformed
// (no title element, no abstract-page link) and must be skipped.
const sampleSearchHTML = `<!DOCTYPE html>
<html><body>
<h1 class="title is-clearfix">Showing 1&ndash;3 of 1,234 results for all: attention</h1>
<ol class="breathe-horizontal">
<li class="arxiv-result">
  <div class="is-marginless">
    <p class="list-title is-inline-block">
      <span><a href="https://arxiv.org/abs/1706.03762">arXiv:1706.03762</a></span>
    </p>
    <div class="tags is-inline-block">
      <span class="tag is-small is-link tooltip is-tooltip-top">cs.CL</span>
      <span class="tag is-small is-grey tooltip is-tooltip-top">cs.LG</span>
      <span class="tag is-small is-light tooltip is-tooltip-top">doi:10.5555/3295222</span>
    </div>
  </div>
  <p class="title is-5 mathjax">Attention
     Is   All You Need</p>
  <p class="authors">
    <span class="has-text-black-bis has-text-weight-semibold">Authors:</span>
    <a href="/a/vaswani_a_1">Ashish Vaswani</a>,
    <a href="/a/shazeer_n_1">Noam Shazeer</a>
  </p>
  <span class="abstract-full has-text-grey-dark mathjax">Abstract: We propose a new architecture based solely on attention. Less</span>
  <p class="is-size-7"><span class="has-text-black-bis">Submitted</span> 12 June, 2017; originally announced June 2017.</p>
</li>
<li class="arxiv-result">
  <p class="authors"><a href="/a/nobody_x_1">Orphan Author</a></p>
  <span class="abstract">A block with neither title nor link.</span>
</li>
<li class="arxiv-result">
  <div class="is-marginless">
    <p class="list-title is-inline-block">
      <span><a href="https://arxiv.org/abs/1810.04805">arXiv:1810.04805</a></span>
    </p>
  </div>
  <p class="title is-5 mathjax">BERT: Pre-training of Deep Bidirectional Transformers</p>
  <p class="authors">
    <a href="/a/devlin_j_1">Jacob Devlin</a>
  </p>
  <span class="abstract has-text-grey-dark mathjax">We introduce BERT. More</span>
</li>
</ol>
</body></html>`

func TestParseSearchResults(t *testing.T) {
	result, err := ParseSearchResults(sampleSearchHTML, "attention", 1, 25)
	if err != nil {
		t.Fatalf("ParseSearchResults: %v", err)
	}

	if result.Query != "attention" {
		t.Errorf("Query = %q", result.Query)
	}
	if result.Page != 1 || result.PageSize != 25 {
		t.Errorf("Page/PageSize = %d/%d, want 1/25", result.Page, result.PageSize)
	}
	if result.TotalResults != 1234 {
		t.Errorf("TotalResults = %d, want 1234", result.TotalResults)
	}
	// The malformed middle block is skipped without sinking the page.
	if len(result.Papers) != 2 {
		t.Fatalf("len(Papers) = %d, want 2", len(result.Papers))
	}

	p := result.Papers[0]
	if p.ID != "1706.03762" {
		t.Errorf("ID = %q", p.ID)
	}
	if p.Title != "Attention Is All You Need" {
		t.Errorf("Title = %q", p.Title)
	}
	if p.Abstract != "We propose a new architecture based solely on attention." {
		t.Errorf("Abstract = %q", p.Abstract)
	}
	if p.URLAbstract != "https://arxiv.org/abs/1706.03762" {
		t.Errorf("URLAbstract = %q", p.URLAbstract)
	}
	if p.URLPDF != "https://arxiv.org/pdf/1706.03762.pdf" {
		t.Errorf("URLPDF = %q", p.URLPDF)
	}
	if len(p.Authors) != 2 || p.Authors[0] != "Ashish Vaswani" || p.Authors[1] != "Noam Shazeer" {
		t.Errorf("Authors = %v", p.Authors)
	}
	if len(p.Categories) != 2 || p.Categories[0] != "cs.CL" || p.Categories[1] != "cs.LG" {
		t.Errorf("Categories = %v, DOI tags must be excluded", p.Categories)
	}
	if p.DatePublished != "12 June, 2017" {
		t.Errorf("DatePublished = %q", p.DatePublished)
	}

	// Second paper uses the short abstract region fallback.
	q := result.Papers[1]
	if q.ID != "1810.04805" {
		t.Errorf("second ID = %q", q.ID)
	}
	if q.Abstract != "We introduce BERT." {
		t.Errorf("second Abstract = %q", q.Abstract)
	}
	if q.DatePublished != "" {
		t.Errorf("second DatePublished = %q, want unset", q.DatePublished)
	}
}

func TestParseSearchResultsNoTotal(t *testing.T) {
	result, err := ParseSearchResults("<html><body><p>Sorry, no records</p></body></html>", "q", 1, 25)
	if err != nil {
		t.Fatalf("ParseSearchResults: %v", err)
	}
	if result.TotalResults != 0 {
		t.Errorf("TotalResults = %d, want 0", result.TotalResults)
	}
	if len(result.Papers) != 0 {
		t.Errorf("len(Papers) = %d, want 0", len(result.Papers))
	}
}

func TestParseSearchResultUnresolvableLink(t *testing.T) {
	html := `<li class="arxiv-result">
		<p class="list-title"><span><a href="https://example.com/elsewhere">link</a></span></p>
		<p class="title mathjax">Some Title</p>
	</li>`
	result, err := ParseSearchResults("<html><body><ol>"+html+"</ol></body></html>", "q", 1, 25)
	if err != nil {
		t.Fatalf("ParseSearchResults: %v", err)
	}
	if len(result.Papers) != 1 {
		t.Fatalf("len(Papers) = %d, want 1", len(result.Papers))
	}
	p := result.Papers[0]
	if p.ID != "" {
		t.Errorf("ID = %q, want empty", p.ID)
	}
	// Unidentified records never carry a derived PDF URL.
	if p.URLPDF != "" {
		t.Errorf("URLPDF = %q, want empty", p.URLPDF)
	}
	if !strings.Contains(p.URLAbstract, "example.com") {
		t.Errorf("URLAbstract = %q, raw href should be kept", p.URLAbstract)
	}
}
