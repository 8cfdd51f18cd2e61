package arxiv

import "testing"

// sampleListingHTML carries three dt/dd pairs; the middle pair has no
// abstract-page link and must be skipped.
const sampleListingHTML = `<!DOCTYPE html>
<html><body>
<dl id="articles">
<dt>
  <a href="/abs/2508.00001" title="Abstract" id="2508.00001">arXiv:2508.00001</a>
  [<a href="/pdf/2508.00001" title="Download PDF">pdf</a>]
</dt>
<dd>
  <div class="meta">
    <div class="list-title mathjax"><span class="descriptor">Title:</span> Planning with Large Language Models</div>
    <div class="list-authors">
      <a href="/a/alice_a_1">Alice Author</a>,
      <a href="/a/bob_b_1">Bob Builder</a>
    </div>
    <div class="list-subjects"><span class="descriptor">Subjects:</span> Artificial Intelligence (cs.AI); Machine Learning (cs.LG); Artificial Intelligence (cs.AI)</div>
  </div>
</dd>
<dt><a href="/format/broken">other</a></dt>
<dd>
  <div class="meta">
    <div class="list-title"><span class="descriptor">Title:</span> No Identifier Here</div>
  </div>
</dd>
<dt><a href="/abs/2508.00002">arXiv:2508.00002</a></dt>
<dd>
  <div class="meta">
    <div class="list-title"><span class="descriptor">Title:</span> A Second Paper</div>
    <div class="list-authors"><a href="/a/carol_c_1">Carol Coder</a></div>
    <div class="list-subjects"><span class="descriptor">Subjects:</span> Robotics (cs.RO)</div>
  </div>
</dd>
</dl>
</body></html>`

func TestParseListing(t *testing.T) {
	papers, err := ParseListing(sampleListingHTML)
	if err != nil {
		t.Fatalf("ParseListing: %v", err)
	}

	// The pair without a resolvable identifier is skipped.
	if len(papers) != 2 {
		t.Fatalf("len(papers) = %d, want 2", len(papers))
	}

	p := papers[0]
	if p.ID != "2508.00001" {
		t.Errorf("ID = %q", p.ID)
	}
	if p.Title != "Planning with Large Language Models" {
		t.Errorf("Title = %q, label must be stripped", p.Title)
	}
	if len(p.Authors) != 2 || p.Authors[0] != "Alice Author" {
		t.Errorf("Authors = %v", p.Authors)
	}
	// Category codes deduplicated in first-seen order.
	if len(p.Categories) != 2 || p.Categories[0] != "cs.AI" || p.Categories[1] != "cs.LG" {
		t.Errorf("Categories = %v", p.Categories)
	}
	// Listing pages carry no abstract.
	if p.Abstract != "" {
		t.Errorf("Abstract = %q, want empty", p.Abstract)
	}
	if p.URLAbstract != "https://arxiv.org/abs/2508.00001" {
		t.Errorf("URLAbstract = %q", p.URLAbstract)
	}
	if p.URLPDF != "https://arxiv.org/pdf/2508.00001.pdf" {
		t.Errorf("URLPDF = %q", p.URLPDF)
	}

	q := papers[1]
	if q.ID != "2508.00002" || q.Title != "A Second Paper" {
		t.Errorf("second paper = %+v", q)
	}
	if len(q.Categories) != 1 || q.Categories[0] != "cs.RO" {
		t.Errorf("second Categories = %v", q.Categories)
	}
}

func TestParseListingEmpty(t *testing.T) {
	papers, err := ParseListing("<html><body><p>No listings</p></body></html>")
	if err != nil {
		t.Fatalf("ParseListing: %v", err)
	}
	if len(papers) != 0 {
		t.Errorf("len(papers) = %d, want 0", len(papers))
	}
}
