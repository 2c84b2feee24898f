package responder

import (
	"fmt"
	"strings"
)

// Style selects the caption voice.
type Style string

const (
	StyleCasual       Style = "casual"
	StyleProfessional Style = "professional"
	StyleCreative     Style = "creative"
)

// ParseStyle maps free-form config text to a Style, defaulting to casual.
func ParseStyle(s string) Style {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case StyleProfessional:
		return StyleProfessional
	case StyleCreative:
		return StyleCreative
	default:
		return StyleCasual
	}
}

const maxCaptionHashtags = 5

// GenerateCaption fills a random caption template with the topic and up to
// five topic-matched hashtags. The output always contains the topic literal.
func (r *Responder) GenerateCaption(topic string, style Style) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.generateCaption(topic, style)
}

func (r *Responder) generateCaption(topic string, style Style) string {
	template := r.pick(captionTemplates)

	switch style {
	case StyleProfessional:
		template = strings.ReplaceAll(template, "vibes hitting different", "insights resonating strongly")
		template = strings.ReplaceAll(template, "Real talk", "Key insight")
	case StyleCreative:
		template = "🎨 " + template
	}

	tags := HashtagsForTopic(topic)
	if len(tags) > maxCaptionHashtags {
		tags = tags[:maxCaptionHashtags]
	}

	out := strings.ReplaceAll(template, "{topic}", topic)
	return strings.ReplaceAll(out, "{hashtags}", strings.Join(tags, " "))
}

// HashtagsForTopic returns the full hashtag list for the first category whose
// keywords appear in topicText, falling back to the general set.
func HashtagsForTopic(topicText string) []string {
	topicText = strings.ToLower(topicText)
	for _, c := range hashtagCategories {
		for _, kw := range c.keywords {
			if strings.Contains(topicText, kw) {
				return hashtagTable[c.category]
			}
		}
	}
	return hashtagTable["general"]
}

// ContentIdeas returns five distinct random post ideas, numbered, with a
// niche-specific closer.
func (r *Responder) ContentIdeas(niche string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.contentIdeas(niche)
}

func (r *Responder) contentIdeas(niche string) string {
	var lines []string
	for i, idea := range r.sample(contentIdeaList, 5) {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, idea))
	}
	return strings.Join(lines, "\n") +
		fmt.Sprintf("\n\n🎯 For %s creators: Consider sharing industry insights, behind-the-scenes content, or community challenges!", niche)
}

// EngagementTips returns the advice for one named strategy, or the whole
// table when focus is empty or unknown.
func (r *Responder) EngagementTips(focus string) string {
	return r.engagementTips(focus)
}

func (r *Responder) engagementTips(focus string) string {
	for _, s := range engagementStrategies {
		if s.name == focus {
			return "💡 " + s.tip
		}
	}

	var b strings.Builder
	b.WriteString("🚀 **Looply Engagement Mastery:**\n\n")
	for _, s := range engagementStrategies {
		fmt.Fprintf(&b, "**%s:** %s\n\n", strategyTitle(s.name), s.tip)
	}
	b.WriteString("🌟 Remember: Authentic engagement beats vanity metrics every time!")
	return b.String()
}

// AnalyzeTrends reports three random entries from the current trend list.
func (r *Responder) AnalyzeTrends() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.analyzeTrends()
}

func (r *Responder) analyzeTrends() string {
	return "🎭 **Current Looply Trends:**\n\n" + strings.Join(r.sample(trendLines, 3), "\n")
}

// strategyTitle turns "post_timing" into "Post Timing".
func strategyTitle(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
