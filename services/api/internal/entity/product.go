package entity

import (
	"strings"
	"time"
)

// ProductInfo is the offer description a user submits from the landing page
// form. JSON keys match the web client's form state.
type ProductInfo struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	Name              string    `json:"name"`
	Goal              string    `json:"goal"`
	Price             string    `json:"price"`
	Audience          string    `json:"audience"`
	AwarenessLevel    string    `json:"awarenessLevel"`
	Problems          string    `json:"problems"`
	Solution          string    `json:"solution"`
	Benefits          string    `json:"benefits"`
	USP               string    `json:"usp"`
	Testimonials      string    `json:"testimonials"`
	Features          string    `json:"features"`
	Guarantee         string    `json:"guarantee"`
	CTA               string    `json:"cta"`
	Tone              string    `json:"tone"`
	References        string    `json:"references"`
	MainKeyword       string    `json:"mainkeyword"`
	SecondaryKeywords string    `json:"secondarykeywords"`
	Location          string    `json:"location"`
	Brand             string    `json:"brand"`
	PrimaryColor      string    `json:"primaryColor"`
	SecondaryColor    string    `json:"secondaryColor"`
	AccentColor       string    `json:"accentColor"`
	BackgroundColor   string    `json:"backgroundColor"`
	TextColor         string    `json:"textColor"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// MissingFields lists, in form order, the required fields that are blank.
func (p *ProductInfo) MissingFields() []string {
	required := []struct {
		name  string
		value string
	}{
		{"name", p.Name},
		{"goal", p.Goal},
		{"audience", p.Audience},
		{"awarenessLevel", p.AwarenessLevel},
		{"problems", p.Problems},
		{"solution", p.Solution},
		{"benefits", p.Benefits},
		{"usp", p.USP},
		{"features", p.Features},
		{"cta", p.CTA},
		{"tone", p.Tone},
		{"mainkeyword", p.MainKeyword},
	}

	var missing []string
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}
