package responder

import (
	"fmt"
	"strings"
	"time"
)

// intentRules is evaluated in order and the first match wins. Keywords
// overlap across intents ("time" appears in joke requests, "for" in almost
// anything), so the order is a behavioral contract, not a style choice.
var intentRules = []struct {
	matches func(input string) bool
	respond func(r *Responder, input string) string
}{
	{containsAny("hello", "hi", "hey"), (*Responder).greet},
	{containsAny("time"), (*Responder).clock},
	{containsAny("joke"), (*Responder).joke},
	{containsAny("caption", "post idea", "create post"), (*Responder).caption},
	{containsAny("hashtag"), (*Responder).hashtags},
	{containsAny("content idea", "post suggestion", "what to post"), (*Responder).ideas},
	{containsAny("engagement", "more likes", "more followers", "grow"), (*Responder).engagement},
	{containsAny("trend", "trending", "popular", "viral"), (*Responder).trends},
	{containsAny("performance", "analytics", "metrics"), (*Responder).analytics},
	{containsAny("learn", "remember"), (*Responder).learnAbout},
	{containsAny("upgrade"), (*Responder).upgrade},
	{containsAny("help", "commands", "what can you do"), (*Responder).help},
}

// Respond classifies one utterance and returns the reply. It is a total
// function: anything that matches no intent gets a fallback pick.
func (r *Responder) Respond(utterance string) string {
	input := strings.ToLower(strings.TrimSpace(utterance))

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rule := range intentRules {
		if rule.matches(input) {
			return rule.respond(r, input)
		}
	}
	return r.pick(fallbacks)
}

func containsAny(keywords ...string) func(string) bool {
	return func(input string) bool {
		for _, kw := range keywords {
			if strings.Contains(input, kw) {
				return true
			}
		}
		return false
	}
}

// textAfter reports whether word occurs in input and, if so, the trimmed text
// after its last occurrence. The trailing text may be empty.
func textAfter(input, word string) (string, bool) {
	idx := strings.LastIndex(input, word)
	if idx < 0 {
		return "", false
	}
	return strings.TrimSpace(input[idx+len(word):]), true
}

func (r *Responder) greet(string) string {
	return r.pick(greetings)
}

func (r *Responder) clock(string) string {
	return fmt.Sprintf("⏰ Current time is %s - Perfect time to create some content!", time.Now().Format("15:04:05"))
}

func (r *Responder) joke(string) string {
	return r.pick(jokes)
}

func (r *Responder) caption(input string) string {
	topic := "your experience"
	if t, ok := textAfter(input, "about"); ok {
		topic = t
	} else if t, ok := textAfter(input, "for"); ok {
		topic = t
	}
	return r.generateCaption(topic, StyleCasual)
}

func (r *Responder) hashtags(input string) string {
	topic := strings.TrimSpace(strings.ReplaceAll(input, "hashtag", ""))
	if topic == "" {
		topic = "general content"
	}
	tags := HashtagsForTopic(topic)
	return fmt.Sprintf("📝 **Hashtag suggestions for %s:**\n\n%s\n\n💡 Tip: Mix popular and niche hashtags for best reach!",
		topic, strings.Join(tags, " "))
}

func (r *Responder) ideas(input string) string {
	niche := "general"
	if n, ok := textAfter(input, "for"); ok {
		niche = n
	}
	return fmt.Sprintf("💡 **Content Ideas for You:**\n\n%s", r.contentIdeas(niche))
}

func (r *Responder) engagement(string) string {
	return r.engagementTips("")
}

func (r *Responder) trends(string) string {
	return r.analyzeTrends()
}

func (r *Responder) analytics(string) string {
	return analyticsTips
}

// learnAbout only explains the learn syntax. The write path is the
// Learn/Recall API; free-text utterances are never parsed for key: value.
func (r *Responder) learnAbout(string) string {
	return learnHint
}

func (r *Responder) upgrade(string) string {
	r.intelligence++
	return fmt.Sprintf("🚀 Intelligence upgraded to level %d! I'm getting smarter about Looply content creation!", r.intelligence)
}

func (r *Responder) help(string) string {
	return helpBlock
}
