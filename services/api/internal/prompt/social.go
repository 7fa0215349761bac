package prompt

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"brand-sell/services/api/internal/entity"
)

// ErrInvalidOption is returned for a presentation option outside its enum.
var ErrInvalidOption = errors.New("invalid post option")

var platformContext = map[entity.Platform]string{
	entity.PlatformFacebook:  "Facebook (format long acceptable, engagement communautaire)",
	entity.PlatformInstagram: "Instagram (visuel important, hashtags essentiels, stories possibles)",
	entity.PlatformTwitter:   "X/Twitter (concis, maximum 280 caractères, trending topics)",
	entity.PlatformLinkedIn:  "LinkedIn (professionnel, B2B, expertise)",
	entity.PlatformTikTok:    "TikTok (jeune audience, tendances, créatif)",
}

var objectiveContext = map[entity.Objective]string{
	entity.ObjectiveAwareness:  "sensibiliser et faire connaître le produit",
	entity.ObjectiveEngagement: "encourager les interactions, commentaires et partages",
	entity.ObjectiveConversion: "inciter à l'achat ou à l'action",
	entity.ObjectiveTraffic:    "diriger vers le site web ou la page produit",
}

var lengthGuide = map[entity.PostLength]string{
	entity.LengthShort:  "un post concis et percutant",
	entity.LengthMedium: "un post équilibré avec détails importants",
	entity.LengthLong:   "un post détaillé et informatif",
}

var toneGuide = map[entity.PostTone]string{
	entity.ToneProfessional: "un ton professionnel et sérieux",
	entity.ToneCasual:       "un ton décontracté et accessible",
	entity.ToneEnthusiastic: "un ton enthousiaste et énergique",
	entity.ToneEducational:  "un ton informatif et pédagogique",
}

// PostProduct is the product summary a social post is written about.
type PostProduct struct {
	Name        string
	Description string
	Price       string
	Category    string
	Features    string
	Tags        string
	URL         string
}

// PostProductFrom summarises a stored product for the social composer.
func PostProductFrom(p *entity.ProductInfo) PostProduct {
	return PostProduct{
		Name:        p.Name,
		Description: joinNonEmpty(". ", p.Solution, p.Benefits),
		Price:       p.Price,
		Category:    p.Audience,
		Features:    p.Features,
		Tags:        joinNonEmpty(", ", p.MainKeyword, p.SecondaryKeywords),
	}
}

func ValidateOptions(opts entity.PostOptions) error {
	if _, ok := platformContext[opts.Platform]; !ok {
		return fmt.Errorf("%w: platform %q", ErrInvalidOption, opts.Platform)
	}
	if _, ok := objectiveContext[opts.Objective]; !ok {
		return fmt.Errorf("%w: objective %q", ErrInvalidOption, opts.Objective)
	}
	if _, ok := lengthGuide[opts.Length]; !ok {
		return fmt.Errorf("%w: length %q", ErrInvalidOption, opts.Length)
	}
	if _, ok := toneGuide[opts.Tone]; !ok {
		return fmt.Errorf("%w: tone %q", ErrInvalidOption, opts.Tone)
	}
	return nil
}

// Social builds the prompt for one social media post. Options are validated
// first; nothing is composed for an unknown enum value.
func Social(product PostProduct, opts entity.PostOptions) (string, error) {
	if err := ValidateOptions(opts); err != nil {
		return "", err
	}

	platform := platformContext[opts.Platform]
	objective := objectiveContext[opts.Objective]

	url := opts.CustomURL
	if url == "" {
		url = product.URL
	}

	hashtagsHint, emojisHint := "", ""
	if opts.IncludeHashtags {
		hashtagsHint = "\nInclus des hashtags pertinents pour maximiser la portée."
	}
	if opts.IncludeEmojis {
		emojisHint = "\nUtilise des emojis appropriés pour rendre le post plus engageant."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Créé un post pour %s avec l'objectif de %s.\n\n", platform, objective)
	b.WriteString("PRODUIT À PROMOUVOIR :\n")
	fmt.Fprintf(&b, "- Nom : %s\n", product.Name)
	fmt.Fprintf(&b, "- Description : %s\n", product.Description)
	fmt.Fprintf(&b, "- Prix : %s€\n", product.Price)
	fmt.Fprintf(&b, "- Catégorie : %s\n", product.Category)
	fmt.Fprintf(&b, "- Caractéristiques clés : %s\n", product.Features)
	fmt.Fprintf(&b, "- Tags : %s\n", product.Tags)
	fmt.Fprintf(&b, "- URL : %s\n\n", url)
	b.WriteString("CONSIGNES :\n")
	fmt.Fprintf(&b, "- Plateforme : %s\n", platform)
	fmt.Fprintf(&b, "- Longueur : %s\n", lengthGuide[opts.Length])
	fmt.Fprintf(&b, "- Ton : %s\n", toneGuide[opts.Tone])
	fmt.Fprintf(&b, "- Inclure des hashtags : %s\n", yesNo(opts.IncludeHashtags))
	fmt.Fprintf(&b, "- Inclure des emojis : %s\n", yesNo(opts.IncludeEmojis))
	fmt.Fprintf(&b, "- Objectif principal : %s\n\n", objective)
	fmt.Fprintf(&b, "%s\n%s\n\n", hashtagsHint, emojisHint)
	fmt.Fprintf(&b, "Assure-toi que le post est optimisé pour %s et respecte les bonnes pratiques de cette plateforme.", opts.Platform)

	return b.String(), nil
}

var hashtagPattern = regexp.MustCompile(`#[\p{L}\p{N}_]+`)

// ExtractHashtags returns the hashtags of content in order of first
// appearance, without duplicates. The result is never nil.
func ExtractHashtags(content string) []string {
	tags := []string{}
	seen := make(map[string]bool)
	for _, tag := range hashtagPattern.FindAllString(content, -1) {
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		tags = append(tags, tag)
	}
	return tags
}

// NormalizeHashtags trims entries, drops blanks and prefixes a missing '#'.
func NormalizeHashtags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || tag == "#" {
			continue
		}
		if !strings.HasPrefix(tag, "#") {
			tag = "#" + tag
		}
		out = append(out, tag)
	}
	return out
}

func yesNo(v bool) string {
	if v {
		return "OUI"
	}
	return "NON"
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}
