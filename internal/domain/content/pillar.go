package content

// Pillar is one of the fixed content categories rotated through the calendar.
type Pillar struct {
	Name string `json:"name"`
	Hint string `json:"hint"`
}

const (
	PillarEducational     = "Educational"
	PillarBehindTheScenes = "Behind-the-Scenes"
	PillarTestimonial     = "Testimonial/Social Proof"
	PillarProductOffer    = "Product/Offer"
	PillarEngagement      = "Engagement"
	PillarStory           = "Story"
)

var pillars = []Pillar{
	{PillarEducational, "Share a quick tip that solves a common problem for your audience."},
	{PillarBehindTheScenes, "Show a candid look at your process, team, or workspace."},
	{PillarTestimonial, "Share a short customer quote and the outcome they achieved."},
	{PillarProductOffer, "Highlight one offering with benefits, price (optional), and CTA."},
	{PillarEngagement, "Ask a question or run a simple poll to spark comments."},
	{PillarStory, "Tell a brief story of a challenge → action → result."},
}

// Pillars returns the rotation in order.
func Pillars() []Pillar {
	out := make([]Pillar, len(pillars))
	copy(out, pillars)
	return out
}

// PillarForDay maps a 0-based day offset onto the rotation.
func PillarForDay(day int) Pillar {
	n := len(pillars)
	return pillars[((day%n)+n)%n]
}
