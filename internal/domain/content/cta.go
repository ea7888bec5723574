package content

import (
	"math/rand/v2"
	"strings"
)

const genericCTA = "Tell us what you think below 👇"

var ctaTable = map[string]map[Tone][]string{
	PillarEducational: {
		ToneFriendly:      {"Save this for later and share it with a friend who needs it 💛", "Got a question? Drop it below and we'll help!"},
		ToneProfessional:  {"Save this post for reference.", "Questions? Message us for a quick consult."},
		TonePlayful:       {"Save it before you forget it 😉", "Tag the friend who needs this yesterday!"},
		ToneInspirational: {"Small steps add up. Save this and start today.", "Share this with someone who's ready to grow."},
	},
	PillarBehindTheScenes: {
		ToneFriendly:      {"Say hi to the team in the comments 👋", "What would you like to see behind the scenes next?"},
		ToneProfessional:  {"Follow for more on how we work.", "Interested in our process? Get in touch."},
		TonePlayful:       {"Yes, it's always this chaotic. Follow for more 🙃", "Guess what happens next in the comments!"},
		ToneInspirational: {"Every result starts here. Follow along for the journey.", "Proud of this team. Tell us who inspires you."},
	},
	PillarTestimonial: {
		ToneFriendly:      {"Thank you for trusting us! Want results like this? Send us a message.", "Share your own experience in the comments 💬"},
		ToneProfessional:  {"Ready for similar results? Book a consultation.", "Read more client stories on our website."},
		TonePlayful:       {"We're blushing. Want to be our next happy customer?", "Drop a ⭐ if you've been here too!"},
		ToneInspirational: {"Your story could be next. Reach out today.", "Grateful for every client who trusts us with their goals."},
	},
	PillarProductOffer: {
		ToneFriendly:      {"Tap the link in bio to grab yours!", "Send us a message and we'll set you up 🙌"},
		ToneProfessional:  {"Learn more or book now via the link in our profile.", "Contact us today to get started."},
		TonePlayful:       {"Treat yourself. You deserve it. Link in bio 🛍️", "Go on, click the link. We won't tell."},
		ToneInspirational: {"Invest in yourself today. Link in bio.", "Take the first step. We're ready when you are."},
	},
	PillarEngagement: {
		ToneFriendly:      {"Tell us in the comments 👇", "Vote below, we read every reply!"},
		ToneProfessional:  {"Share your perspective in the comments.", "We'd value your input below."},
		TonePlayful:       {"Comment below. Wrong answers only 😜", "Pick a side in the comments!"},
		ToneInspirational: {"Your voice matters. Share it below.", "Tell us what motivates you today."},
	},
	PillarStory: {
		ToneFriendly:      {"Have you been through something similar? Share below 💬", "Follow along for more stories like this!"},
		ToneProfessional:  {"Facing a similar challenge? Let's talk.", "Follow for more case studies."},
		TonePlayful:       {"Plot twist: it all worked out. Follow for part two 🎬", "Would you have done the same? Tell us!"},
		ToneInspirational: {"Every challenge is a chance to grow. What's yours?", "Keep going. Your breakthrough is coming."},
	},
}

// Only these platforms have a profile bio link.
var bioLinkPlatforms = map[string]bool{
	PlatformInstagram: true,
	PlatformTikTok:    true,
}

var linkInPost = strings.NewReplacer(
	"link in bio", "link in the post",
	"Link in bio", "Link in the post",
	"link in our profile", "link in the post",
)

// SelectCTA picks a call to action for the pillar and tone. Unknown tones use
// the pillar's friendly list and unknown pillars get a generic line.
func SelectCTA(rng *rand.Rand, pillar string, tone Tone, platform string) string {
	byTone, ok := ctaTable[pillar]
	if !ok {
		return genericCTA
	}
	options, ok := byTone[tone]
	if !ok || len(options) == 0 {
		options = byTone[ToneFriendly]
	}
	cta := pick(rng, options)
	if !bioLinkPlatforms[normalizePlatform(platform)] {
		cta = linkInPost.Replace(cta)
	}
	return cta
}
