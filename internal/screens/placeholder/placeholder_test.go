package placeholder

import (
	"strings"
	"testing"
)

func TestPlaceholderView(t *testing.T) {
	p := New("Career Mapper", NoAdvisorMessage)
	if p.Title() != "Career Mapper" {
		t.Errorf("title = %q", p.Title())
	}
	v := p.View(80, 20)
	if !strings.Contains(v, "GEMINI_API_KEY") {
		t.Errorf("view missing guidance: %q", v)
	}
	if s, cmd := p.Update(nil); s != p || cmd != nil {
		t.Error("update should be a no-op")
	}
}
