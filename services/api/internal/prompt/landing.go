// Package prompt turns stored product descriptions into the natural-language
// instructions sent to the model. Every function here is pure.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"brand-sell/services/api/internal/entity"
)

var (
	ErrUnknownVersion    = errors.New("unknown prompt version")
	ErrIncompleteProduct = errors.New("product info is incomplete")
)

type Version string

const (
	// V1 asks for the copy of a complete landing page.
	V1 Version = "v1"
	// V2 asks for an SEO oriented sales funnel page that follows the brand colors.
	V2 Version = "v2"
)

var Versions = []Version{V1, V2}

// Landing composes the landing page prompt of the given version.
func Landing(version Version, p *entity.ProductInfo) (string, error) {
	if missing := p.MissingFields(); len(missing) > 0 {
		return "", fmt.Errorf("%w: missing %s", ErrIncompleteProduct, strings.Join(missing, ", "))
	}

	switch version {
	case V1:
		return landingV1(p), nil
	case V2:
		return landingV2(p), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownVersion, version)
	}
}

func landingV1(p *entity.ProductInfo) string {
	var b strings.Builder
	b.WriteString("Tu es un copywriter expert en pages de vente à fort taux de conversion.\n")
	fmt.Fprintf(&b, "Rédige le contenu complet d'une landing page en français pour le produit \"%s\".\n\n", p.Name)

	writeOffer(&b, p)

	b.WriteString("CONSIGNES :\n")
	fmt.Fprintf(&b, "- Adopte une voix %s du début à la fin.\n", p.Tone)
	fmt.Fprintf(&b, "- Adresse-toi à un lecteur au niveau de conscience \"%s\".\n", p.AwarenessLevel)
	fmt.Fprintf(&b, "- Chaque section doit servir l'objectif : %s.\n", p.Goal)
	fmt.Fprintf(&b, "- Termine par l'appel à l'action \"%s\".\n\n", p.CTA)

	b.WriteString("FORMAT DE RÉPONSE :\n")
	b.WriteString("Réponds uniquement avec un objet JSON valide, sans texte autour, avec les clés suivantes :\n")
	b.WriteString(`{"hero_title": string, "hero_subtitle": string, "problem": string, "solution": string, ` +
		`"benefits": [string], "features": [string], "testimonials": [{"name": string, "quote": string}], ` +
		`"guarantee": string, "faq": [{"question": string, "answer": string}], "cta": string}`)
	return b.String()
}

func landingV2(p *entity.ProductInfo) string {
	var b strings.Builder
	b.WriteString("Tu es un expert en tunnels de vente et en référencement naturel (SEO).\n")
	fmt.Fprintf(&b, "Rédige une page de tunnel de vente optimisée SEO en français pour le produit \"%s\".\n\n", p.Name)

	writeOffer(&b, p)

	b.WriteString("RÉFÉRENCEMENT :\n")
	fmt.Fprintf(&b, "- Mot-clé principal : %s\n", p.MainKeyword)
	writeOptional(&b, "Mots-clés secondaires", p.SecondaryKeywords)
	writeOptional(&b, "Zone géographique", p.Location)
	b.WriteString("\n")

	b.WriteString("IDENTITÉ VISUELLE :\n")
	writeOptional(&b, "Marque", p.Brand)
	writeOptional(&b, "Couleur principale", p.PrimaryColor)
	writeOptional(&b, "Couleur secondaire", p.SecondaryColor)
	writeOptional(&b, "Couleur d'accent", p.AccentColor)
	writeOptional(&b, "Couleur de fond", p.BackgroundColor)
	writeOptional(&b, "Couleur du texte", p.TextColor)
	b.WriteString("\n")

	b.WriteString("CONSIGNES :\n")
	fmt.Fprintf(&b, "- Ton : %s.\n", p.Tone)
	fmt.Fprintf(&b, "- Niveau de conscience du prospect : %s.\n", p.AwarenessLevel)
	fmt.Fprintf(&b, "- Objectif de la page : %s.\n", p.Goal)
	fmt.Fprintf(&b, "- Place le mot-clé \"%s\" dans le titre, la méta-description et le premier paragraphe.\n", p.MainKeyword)
	fmt.Fprintf(&b, "- Chaque étape du tunnel mène à l'appel à l'action \"%s\".\n\n", p.CTA)

	b.WriteString("FORMAT DE RÉPONSE :\n")
	b.WriteString("Réponds uniquement avec un objet JSON valide, sans texte autour, avec les clés suivantes :\n")
	b.WriteString(`{"meta_title": string, "meta_description": string, "slug": string, "keywords": [string], ` +
		`"hero_title": string, "hero_subtitle": string, "problem": string, "solution": string, ` +
		`"benefits": [string], "features": [string], "testimonials": [{"name": string, "quote": string}], ` +
		`"guarantee": string, "faq": [{"question": string, "answer": string}], "cta": string, ` +
		`"colors": {"primary": string, "secondary": string, "accent": string, "background": string, "text": string}}`)
	return b.String()
}

func writeOffer(b *strings.Builder, p *entity.ProductInfo) {
	b.WriteString("OFFRE :\n")
	fmt.Fprintf(b, "- Produit : %s\n", p.Name)
	writeOptional(b, "Prix", p.Price)
	fmt.Fprintf(b, "- Public cible : %s\n", p.Audience)
	fmt.Fprintf(b, "- Problèmes du public : %s\n", p.Problems)
	fmt.Fprintf(b, "- Solution apportée : %s\n", p.Solution)
	fmt.Fprintf(b, "- Bénéfices : %s\n", p.Benefits)
	fmt.Fprintf(b, "- Proposition unique de valeur : %s\n", p.USP)
	fmt.Fprintf(b, "- Fonctionnalités : %s\n", p.Features)
	writeOptional(b, "Témoignages", p.Testimonials)
	writeOptional(b, "Garantie", p.Guarantee)
	writeOptional(b, "Références", p.References)
	fmt.Fprintf(b, "- Appel à l'action : %s\n\n", p.CTA)
}

func writeOptional(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(b, "- %s : %s\n", label, value)
}
