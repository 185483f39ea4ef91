package repurpose

import "unicode/utf8"

// Section keys of RepurposedContent.
const (
	SectionLinkedIn = "linkedin"
	SectionTwitter  = "twitter"
	SectionMeta     = "meta"
	SectionYouTube  = "youtube"
)

// RepurposedContent is the normalized result of a model reply.
// Every field is always a string, possibly empty.
type RepurposedContent struct {
	LinkedIn LinkedInPosts `json:"linkedin"`
	Twitter  TwitterHooks  `json:"twitter"`
	Meta     MetaTags      `json:"meta"`
	YouTube  YouTubeVideo  `json:"youtube"`
}

// LinkedInPosts holds three LinkedIn post variants.
type LinkedInPosts struct {
	Educational   string `json:"educational"`
	Controversial string `json:"controversial"`
	Personal      string `json:"personal"`
}

// TwitterHooks holds three standalone tweets.
type TwitterHooks struct {
	Hook1 string `json:"hook1"`
	Hook2 string `json:"hook2"`
	Hook3 string `json:"hook3"`
}

// MetaTags holds SEO meta fields.
type MetaTags struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
}

// YouTubeVideo holds video metadata.
type YouTubeVideo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Field returns a pointer to the named leaf, or nil if the schema does not
// define it.
func (c *RepurposedContent) Field(section, key string) *string {
	switch section {
	case SectionLinkedIn:
		switch key {
		case "educational":
			return &c.LinkedIn.Educational
		case "controversial":
			return &c.LinkedIn.Controversial
		case "personal":
			return &c.LinkedIn.Personal
		}
	case SectionTwitter:
		switch key {
		case "hook1":
			return &c.Twitter.Hook1
		case "hook2":
			return &c.Twitter.Hook2
		case "hook3":
			return &c.Twitter.Hook3
		}
	case SectionMeta:
		switch key {
		case "title":
			return &c.Meta.Title
		case "description":
			return &c.Meta.Description
		case "keywords":
			return &c.Meta.Keywords
		}
	case SectionYouTube:
		switch key {
		case "title":
			return &c.YouTube.Title
		case "description":
			return &c.YouTube.Description
		}
	}
	return nil
}

// SectionSpec describes one top-level section of the reply schema.
type SectionSpec struct {
	// Key is the canonical JSON key.
	Key string

	// Label is the display name.
	Label string

	// Aliases are other keys accepted in model replies, in preference order.
	Aliases []string

	// Scalar names the field that receives the value when the model returns
	// a bare string instead of an object. Empty means bare strings are dropped.
	Scalar string

	Fields []FieldSpec
}

// FieldSpec describes one leaf of the reply schema.
type FieldSpec struct {
	// Key is the canonical JSON key.
	Key string

	// Label is the display name.
	Label string

	// Aliases are other keys accepted in model replies, in preference order.
	Aliases []string

	// Hint is the instruction shown to the model for this field.
	Hint string

	// Limit is the advisory maximum length in characters. Zero means unbounded.
	Limit int
}

// Schema is the reply contract shared by the prompt builder and the
// normalizer. Order is significant: it is the order fields appear in the
// prompt.
var Schema = []SectionSpec{
	{
		Key:     SectionLinkedIn,
		Label:   "LinkedIn",
		Aliases: []string{"LinkedIn", "linkedin_posts", "linkedInPosts"},
		Fields: []FieldSpec{
			{Key: "educational", Label: "Educational post", Aliases: []string{"Educational"}, Hint: "150-250 words, actionable insights"},
			{Key: "controversial", Label: "Controversial post", Aliases: []string{"Controversial"}, Hint: "Strong opinion that challenges assumptions"},
			{Key: "personal", Label: "Personal story post", Aliases: []string{"Personal", "Personal Story", "personal_story", "story"}, Hint: "Story-driven hook with lesson"},
		},
	},
	{
		Key:     SectionTwitter,
		Label:   "Twitter",
		Aliases: []string{"Twitter", "x", "tweets", "twitter_hooks"},
		Fields: []FieldSpec{
			{Key: "hook1", Label: "Hook 1", Aliases: []string{"Hook 1", "hook_1"}, Hint: "Under 280 characters, curiosity-driven", Limit: 280},
			{Key: "hook2", Label: "Hook 2", Aliases: []string{"Hook 2", "hook_2"}, Hint: "Under 280 characters, bold framing", Limit: 280},
			{Key: "hook3", Label: "Hook 3", Aliases: []string{"Hook 3", "hook_3"}, Hint: "Under 280 characters, insight-focused", Limit: 280},
		},
	},
	{
		Key:     SectionMeta,
		Label:   "Meta tags",
		Aliases: []string{"Meta", "seo", "SEO", "meta_tags"},
		Scalar:  "description",
		Fields: []FieldSpec{
			{Key: "title", Label: "Title", Aliases: []string{"Meta Title", "meta_title", "metaTitle"}, Hint: "SEO meta title under 60 characters", Limit: 60},
			{Key: "description", Label: "Description", Aliases: []string{"Meta Description", "meta_description", "metaDescription"}, Hint: "SEO meta description under 160 characters", Limit: 160},
			{Key: "keywords", Label: "Keywords", Aliases: []string{"Meta Keywords", "meta_keywords", "metaKeywords"}, Hint: "Comma-separated SEO keywords"},
		},
	},
	{
		Key:     SectionYouTube,
		Label:   "YouTube",
		Aliases: []string{"YouTube", "Youtube", "youtube_video"},
		Fields: []FieldSpec{
			{Key: "title", Label: "Title", Aliases: []string{"Video Title", "video_title"}, Hint: "Curiosity-driven, clickable title"},
			{Key: "description", Label: "Description", Aliases: []string{"Video Description", "video_description"}, Hint: "Compelling YouTube description"},
		},
	},
}

// Advisory reports a field that is longer than its advisory limit.
// Advisories never fail a request; they are shown next to the content.
type Advisory struct {
	Section string `json:"section"`
	Field   string `json:"field"`
	Length  int    `json:"length"`
	Limit   int    `json:"limit"`
}

// Advisories returns an Advisory for every field that exceeds its limit,
// in schema order.
func (c *RepurposedContent) Advisories() []Advisory {
	var out []Advisory
	for _, section := range Schema {
		for _, field := range section.Fields {
			if field.Limit == 0 {
				continue
			}
			v := c.Field(section.Key, field.Key)
			if v == nil {
				continue
			}
			if n := utf8.RuneCountInString(*v); n > field.Limit {
				out = append(out, Advisory{
					Section: section.Key,
					Field:   field.Key,
					Length:  n,
					Limit:   field.Limit,
				})
			}
		}
	}
	return out
}
