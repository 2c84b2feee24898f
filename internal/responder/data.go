package responder

// Static reference data for the Looply assistant. Hashtag sets, caption
// templates, and advice text are authored content, not generated.

var hashtagTable = map[string][]string{
	"general":       {"#LooplyLife", "#Authentic", "#Community", "#Share", "#Connect", "#Vibes", "#RealTalk"},
	"fitness":       {"#FitnessJourney", "#HealthyLifestyle", "#WorkoutMotivation", "#FitFam", "#Wellness", "#LooplyFit"},
	"food":          {"#Foodie", "#Delicious", "#Cooking", "#Recipe", "#FoodLover", "#LooplyEats"},
	"travel":        {"#Travel", "#Adventure", "#Wanderlust", "#Explore", "#Journey", "#LooplyTravel"},
	"tech":          {"#Technology", "#Innovation", "#TechLife", "#Digital", "#Future", "#LooplyTech"},
	"art":           {"#Art", "#Creative", "#Artist", "#Inspiration", "#Design", "#LooplyArt"},
	"lifestyle":     {"#Lifestyle", "#Mindful", "#Balance", "#Growth", "#Positive", "#LooplyDaily"},
	"business":      {"#Entrepreneur", "#Business", "#Success", "#Hustle", "#Goals", "#LooplyBiz"},
	"entertainment": {"#Fun", "#Entertainment", "#Music", "#Movies", "#Gaming", "#LooplyFun"},
}

// hashtagCategories is scanned in order; the first keyword hit decides the
// category, so broader keywords ("fun") must come after narrower ones.
var hashtagCategories = []struct {
	keywords []string
	category string
}{
	{[]string{"fitness", "workout", "gym", "health"}, "fitness"},
	{[]string{"food", "recipe", "cooking", "eat"}, "food"},
	{[]string{"travel", "vacation", "trip"}, "travel"},
	{[]string{"tech", "code", "programming", "ai"}, "tech"},
	{[]string{"art", "design", "creative"}, "art"},
	{[]string{"business", "entrepreneur", "startup"}, "business"},
	{[]string{"music", "movie", "game", "fun"}, "entertainment"},
	{[]string{"lifestyle", "mindful", "balance"}, "lifestyle"},
}

var captionTemplates = []string{
	"✨ {topic} vibes hitting different today... What's your take? 💭 {hashtags}",
	"Just discovered something amazing about {topic}! 🔥 Who else can relate? {hashtags}",
	"Today's mood: {topic} energy! 💫 Drop your thoughts below 👇 {hashtags}",
	"Let's talk about {topic}... Your perspective matters! 🌟 {hashtags}",
	"Feeling inspired by {topic} lately 🚀 Anyone else on this wavelength? {hashtags}",
	"Real talk about {topic}: it's been a game-changer 💯 {hashtags}",
	"Can we normalize talking about {topic}? It's so important! 🙌 {hashtags}",
	"Plot twist: {topic} just became my new obsession 😍 {hashtags}",
	"Unpopular opinion: {topic} doesn't get enough credit 🤔 {hashtags}",
	"Behind the scenes of my {topic} journey... it's been wild! 📸 {hashtags}",
}

var contentIdeaList = []string{
	"💡 Share a behind-the-scenes moment from your day",
	"🎯 Ask your community a thought-provoking question",
	"📚 Share something new you learned recently",
	"🌟 Highlight someone who inspires you",
	"🎨 Create a poll about preferences in your niche",
	"💭 Share a personal reflection or insight",
	"📸 Post a photo that tells a story",
	"🎉 Celebrate a small win or achievement",
	"🔥 Share a hot take or unpopular opinion",
	"💪 Document your progress on a goal",
	"🤝 Collaborate with another creator",
	"📱 Show your creative process",
	"🎵 Share what you're listening to",
	"🌅 Post your morning routine",
	"🍕 Share what you're eating",
	"✈️ Document a mini adventure",
	"💡 Give a quick tip in your expertise",
	"🎭 Share a funny moment or meme",
	"📖 Recommend something you love",
	"🎊 Celebrate your community",
}

// engagementStrategies is ordered so the full-table response renders the same
// way every time.
var engagementStrategies = []struct {
	name string
	tip  string
}{
	{"post_timing", "Best posting times on Looply: 7-9 AM, 12-1 PM, and 7-9 PM when your community is most active!"},
	{"hashtag_strategy", "Use 5-8 hashtags: mix 2-3 popular ones (#LooplyLife) with 3-5 niche ones specific to your content."},
	{"content_mix", "Follow the 80/20 rule: 80% valuable/entertaining content, 20% promotional. Keep it authentic!"},
	{"community_building", "Respond to comments within the first hour. Ask questions in your captions to spark conversations."},
	{"consistency", "Post consistently but prioritize quality over quantity. 3-5 high-quality posts per week beats daily rushed content."},
	{"storytelling", "Every post should tell a story. Start with a hook, share the journey, and end with a call-to-action."},
	{"visual_appeal", "Good lighting and composition matter more than expensive equipment. Natural light is your best friend!"},
	{"authenticity", "Share both wins and struggles. Your community connects with real, relatable content more than perfection."},
}

var greetings = []string{
	"Hey there! 👋 I'm LIA, your Looply assistant. Ready to create something amazing?",
	"Hello! ✨ I'm here to help you level up your Looply game. What can we work on?",
	"Hi! 🚀 I'm LIA, and I'm excited to help you create engaging content for Looply!",
}

var jokes = []string{
	"Why don't social media managers ever get lost? They always know how to find their way to trending! 😄",
	"What do you call a hashtag that works out? #FitTag! 💪",
	"Why did the influencer bring a ladder to the photoshoot? To reach new heights! 📸",
	"What's a content creator's favorite type of music? Algo-rhythms! 🎵",
}

var trendLines = []string{
	"📈 'Authentic storytelling' posts are performing 300% better this week",
	"🔥 'Behind-the-scenes' content is trending - people love the real you!",
	"💡 Q&A format posts are getting amazing engagement lately",
	"🎯 'Day in my life' content is super popular right now",
	"✨ Carousel posts with tips are getting great reach",
	"🌟 Community challenges are driving massive engagement",
}

var fallbacks = []string{
	"🤔 I'm still learning about that! Try asking for captions, hashtags, content ideas, or engagement tips.",
	"💡 Not sure about that one! I'm great with content creation, hashtags, and Looply growth strategies.",
	"✨ Let me help you with something I know well - try asking for a caption or content ideas!",
}

const analyticsTips = `📊 **Looply Performance Tips:**

🎯 **Key Metrics to Track:**
• Engagement rate (likes + comments ÷ followers)
• Reach and impressions
• Profile visits and follows
• Save rate (shows content value)

📈 **Optimization Strategies:**
• Post when your audience is most active
• Use analytics to identify top-performing content
• A/B test different caption styles
• Monitor hashtag performance

🚀 **Growth Hacks:**
• Collaborate with other creators
• Engage actively in your community
• Share user-generated content
• Host live sessions or Q&As`

const learnHint = "🧠 I can learn! Try: 'learn my niche: fitness' or 'remember posting time: 7 PM'"

const helpBlock = `🌟 **I'm LIA, your Looply assistant! Here's what I can help with:**

📝 **Content Creation:**
• "Create a caption about travel"
• "Generate hashtags for fitness"
• "Give me content ideas"

📊 **Growth & Strategy:**
• "Engagement tips"
• "Current trends"
• "Performance advice"

🧠 **Learning:**
• "Learn my niche: photography"
• "Remember my posting time: 8 PM"

💡 **Quick Commands:**
• Ask for jokes, time, or just say hello!
• Be specific about your niche for better suggestions`
