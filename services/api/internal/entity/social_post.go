package entity

import "time"

type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformTikTok    Platform = "tiktok"
)

type Objective string

const (
	ObjectiveAwareness  Objective = "awareness"
	ObjectiveEngagement Objective = "engagement"
	ObjectiveConversion Objective = "conversion"
	ObjectiveTraffic    Objective = "traffic"
)

type PostLength string

const (
	LengthShort  PostLength = "short"
	LengthMedium PostLength = "medium"
	LengthLong   PostLength = "long"
)

type PostTone string

const (
	ToneProfessional PostTone = "professional"
	ToneCasual       PostTone = "casual"
	ToneEnthusiastic PostTone = "enthusiastic"
	ToneEducational  PostTone = "educational"
)

var (
	Platforms   = []Platform{PlatformFacebook, PlatformInstagram, PlatformTwitter, PlatformLinkedIn, PlatformTikTok}
	Objectives  = []Objective{ObjectiveAwareness, ObjectiveEngagement, ObjectiveConversion, ObjectiveTraffic}
	PostLengths = []PostLength{LengthShort, LengthMedium, LengthLong}
	PostTones   = []PostTone{ToneProfessional, ToneCasual, ToneEnthusiastic, ToneEducational}
)

// PostOptions are the presentation choices of the social post form.
type PostOptions struct {
	Platform        Platform   `json:"platform"`
	Objective       Objective  `json:"objective"`
	Length          PostLength `json:"length"`
	Tone            PostTone   `json:"tone"`
	IncludeHashtags bool       `json:"include_hashtags"`
	IncludeEmojis   bool       `json:"include_emojis"`
	CustomURL       string     `json:"custom_url"`
}

type SocialPost struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	UserID    string    `json:"user_id"`
	Platform  Platform  `json:"platform"`
	Content   string    `json:"content"`
	Hashtags  []string  `json:"hashtags"`
	Tone      PostTone  `json:"tone"`
	Objective Objective `json:"objective"`
	IsEdited  bool      `json:"is_edited"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p Platform) Valid() bool   { return contains(Platforms, p) }
func (o Objective) Valid() bool  { return contains(Objectives, o) }
func (l PostLength) Valid() bool { return contains(PostLengths, l) }
func (t PostTone) Valid() bool   { return contains(PostTones, t) }

func contains[T comparable](set []T, v T) bool {
	for _, item := range set {
		if item == v {
			return true
		}
	}
	return false
}
