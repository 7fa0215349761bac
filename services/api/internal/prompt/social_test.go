package prompt

import (
	"testing"

	"brand-sell/services/api/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSocial_EveryOptionCombination(t *testing.T) {
	product := PostProductFrom(crmPro())

	for _, platform := range entity.Platforms {
		for _, objective := range entity.Objectives {
			for _, tone := range entity.PostTones {
				for _, length := range entity.PostLengths {
					opts := entity.PostOptions{Platform: platform, Objective: objective, Tone: tone, Length: length}

					out, err := Social(product, opts)
					require.NoError(t, err, "%+v", opts)
					assert.NotEmpty(t, out)
					assert.Contains(t, out, "CRM Pro")
					assert.Contains(t, out, platformContext[platform])
					assert.Contains(t, out, objectiveContext[objective])
					assert.Contains(t, out, toneGuide[tone])
					assert.Contains(t, out, lengthGuide[length])
				}
			}
		}
	}
}

func TestSocial_IsPure(t *testing.T) {
	product := PostProductFrom(crmPro())
	opts := entity.PostOptions{
		Platform:        entity.PlatformInstagram,
		Objective:       entity.ObjectiveConversion,
		Length:          entity.LengthMedium,
		Tone:            entity.ToneCasual,
		IncludeHashtags: true,
		IncludeEmojis:   true,
	}

	first, err := Social(product, opts)
	require.NoError(t, err)
	second, err := Social(product, opts)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSocial_ExactText(t *testing.T) {
	product := PostProduct{
		Name:        "CRM Pro",
		Description: "CRM centralisé",
		Price:       "49",
		Category:    "PME",
		Features:    "automatisation",
		Tags:        "crm, pme",
		URL:         "https://crm.example",
	}
	opts := entity.PostOptions{
		Platform:        entity.PlatformLinkedIn,
		Objective:       entity.ObjectiveTraffic,
		Length:          entity.LengthShort,
		Tone:            entity.ToneProfessional,
		IncludeHashtags: true,
	}

	want := "Créé un post pour LinkedIn (professionnel, B2B, expertise) avec l'objectif de diriger vers le site web ou la page produit.\n" +
		"\n" +
		"PRODUIT À PROMOUVOIR :\n" +
		"- Nom : CRM Pro\n" +
		"- Description : CRM centralisé\n" +
		"- Prix : 49€\n" +
		"- Catégorie : PME\n" +
		"- Caractéristiques clés : automatisation\n" +
		"- Tags : crm, pme\n" +
		"- URL : https://crm.example\n" +
		"\n" +
		"CONSIGNES :\n" +
		"- Plateforme : LinkedIn (professionnel, B2B, expertise)\n" +
		"- Longueur : un post concis et percutant\n" +
		"- Ton : un ton professionnel et sérieux\n" +
		"- Inclure des hashtags : OUI\n" +
		"- Inclure des emojis : NON\n" +
		"- Objectif principal : diriger vers le site web ou la page produit\n" +
		"\n" +
		"\nInclus des hashtags pertinents pour maximiser la portée.\n" +
		"\n" +
		"\n" +
		"Assure-toi que le post est optimisé pour linkedin et respecte les bonnes pratiques de cette plateforme."

	out, err := Social(product, opts)
	require.NoError(t, err)
	assert.Equal(t, want, out)
}

func TestSocial_CustomURLWins(t *testing.T) {
	product := PostProduct{Name: "CRM Pro", URL: "https://default.example"}
	opts := entity.PostOptions{
		Platform:  entity.PlatformTwitter,
		Objective: entity.ObjectiveAwareness,
		Length:    entity.LengthShort,
		Tone:      entity.ToneCasual,
		CustomURL: "https://promo.example",
	}

	out, err := Social(product, opts)
	require.NoError(t, err)
	assert.Contains(t, out, "- URL : https://promo.example\n")
	assert.NotContains(t, out, "default.example")
}

func TestSocial_RejectsUnknownOptions(t *testing.T) {
	valid := entity.PostOptions{
		Platform:  entity.PlatformFacebook,
		Objective: entity.ObjectiveEngagement,
		Length:    entity.LengthLong,
		Tone:      entity.ToneEducational,
	}

	cases := map[string]func(o *entity.PostOptions){
		"platform":  func(o *entity.PostOptions) { o.Platform = "myspace" },
		"objective": func(o *entity.PostOptions) { o.Objective = "" },
		"length":    func(o *entity.PostOptions) { o.Length = "xl" },
		"tone":      func(o *entity.PostOptions) { o.Tone = "angry" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			opts := valid
			mutate(&opts)
			_, err := Social(PostProduct{Name: "CRM Pro"}, opts)
			assert.ErrorIs(t, err, ErrInvalidOption)
		})
	}
}

func TestPostProductFrom(t *testing.T) {
	product := crmPro()
	product.Price = "49"
	product.SecondaryKeywords = "logiciel CRM"

	got := PostProductFrom(product)
	assert.Equal(t, "CRM Pro", got.Name)
	assert.Equal(t, "CRM centralisé. gain de temps", got.Description)
	assert.Equal(t, "49", got.Price)
	assert.Equal(t, "PME", got.Category)
	assert.Equal(t, "CRM PME, logiciel CRM", got.Tags)
}

func TestExtractHashtags(t *testing.T) {
	assert.Equal(t, []string{"#CRM", "#pme", "#gain_de_temps"},
		ExtractHashtags("Découvrez #CRM Pro pour les #pme ! #crm #gain_de_temps"))
	assert.Equal(t, []string{}, ExtractHashtags("aucun hashtag"))
}

func TestNormalizeHashtags(t *testing.T) {
	assert.Equal(t, []string{"#crm", "#pme"}, NormalizeHashtags([]string{" crm ", "", "#", "#pme"}))
	assert.NotNil(t, NormalizeHashtags(nil))
}
