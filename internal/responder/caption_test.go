package responder

import (
	"fmt"
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

func TestGenerateCaption(t *testing.T) {
	r := newTestResponder()

	for i := 0; i < 20; i++ {
		got := r.GenerateCaption("travel", StyleCasual)

		if !strings.Contains(got, "travel") {
			t.Fatalf("caption %q does not contain the topic", got)
		}

		hashtags := 0
		for _, tok := range strings.Fields(got) {
			if strings.HasPrefix(tok, "#") {
				hashtags++
			}
		}
		if hashtags > maxCaptionHashtags {
			t.Fatalf("caption %q has %d hashtags, max %d", got, hashtags, maxCaptionHashtags)
		}
	}
}

func TestGenerateCaptionStyles(t *testing.T) {
	r := newTestResponder()

	// Cycle enough picks to cover every template.
	for i := 0; i < 50; i++ {
		got := r.GenerateCaption("coffee", StyleProfessional)
		if strings.Contains(got, "vibes hitting different") || strings.Contains(got, "Real talk") {
			t.Fatalf("professional caption kept casual phrasing: %q", got)
		}
	}

	got := r.GenerateCaption("coffee", StyleCreative)
	if !strings.HasPrefix(got, "🎨 ") {
		t.Errorf("creative caption missing prefix: %q", got)
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in   string
		want Style
	}{
		{"casual", StyleCasual},
		{"Professional", StyleProfessional},
		{" creative ", StyleCreative},
		{"", StyleCasual},
		{"bogus", StyleCasual},
	}

	for _, tt := range tests {
		if got := ParseStyle(tt.in); got != tt.want {
			t.Errorf("ParseStyle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHashtagsForTopic(t *testing.T) {
	tests := []struct {
		topic string
		want  string
	}{
		{"workout today", "fitness"},
		{"my favorite recipe", "food"},
		{"vacation plans", "travel"},
		{"AI startup", "tech"}, // tech keywords are checked before business
		{"graphic design", "art"},
		{"entrepreneur life", "business"},
		{"movie night", "entertainment"},
		{"mindful mornings", "lifestyle"},
		{"banana", "general"},
		{"", "general"},
	}

	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			got := HashtagsForTopic(tt.topic)
			if !reflect.DeepEqual(got, hashtagTable[tt.want]) {
				t.Errorf("HashtagsForTopic(%q) = %v, want %s list", tt.topic, got, tt.want)
			}
		})
	}
}

func TestContentIdeas(t *testing.T) {
	r := New(WithRand(rand.New(rand.NewSource(7))))

	got := r.ContentIdeas("fitness")
	if !strings.Contains(got, "For fitness creators") {
		t.Errorf("ContentIdeas reply missing niche closer: %q", got)
	}

	body := strings.SplitN(got, "\n\n", 2)[0]
	lines := strings.Split(body, "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d ideas, want 5:\n%s", len(lines), body)
	}

	seen := map[string]bool{}
	for i, line := range lines {
		if !strings.HasPrefix(line, fmt.Sprintf("%d. ", i+1)) {
			t.Errorf("idea line %d not numbered: %q", i, line)
		}
		if seen[line] {
			t.Errorf("duplicate idea: %q", line)
		}
		seen[line] = true
	}
}

func TestAnalyzeTrends(t *testing.T) {
	r := newTestResponder()

	got := r.AnalyzeTrends()
	if !strings.HasPrefix(got, "🎭 **Current Looply Trends:**") {
		t.Errorf("AnalyzeTrends header missing: %q", got)
	}

	body := strings.SplitN(got, "\n\n", 2)[1]
	lines := strings.Split(body, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d trend lines, want 3", len(lines))
	}
	seen := map[string]bool{}
	for _, line := range lines {
		if !isOneOf(line, trendLines) {
			t.Errorf("unknown trend line %q", line)
		}
		if seen[line] {
			t.Errorf("trend repeated: %q", line)
		}
		seen[line] = true
	}
}

func TestEngagementTips(t *testing.T) {
	r := newTestResponder()

	full := r.EngagementTips("")
	for _, s := range engagementStrategies {
		if !strings.Contains(full, s.tip) {
			t.Errorf("full tips missing %s advice", s.name)
		}
	}
	if !strings.Contains(full, "Post Timing:") {
		t.Errorf("strategy names not title-cased: %q", full)
	}

	focused := r.EngagementTips("consistency")
	if strings.Contains(focused, "Engagement Mastery") {
		t.Errorf("focused lookup returned the full table: %q", focused)
	}
	if !strings.Contains(focused, "quality over quantity") {
		t.Errorf("focused lookup returned wrong tip: %q", focused)
	}
}
