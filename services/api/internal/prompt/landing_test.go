package prompt

import (
	"testing"

	"brand-sell/services/api/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func crmPro() *entity.ProductInfo {
	return &entity.ProductInfo{
		Name:           "CRM Pro",
		Goal:           "obtenir des leads",
		Audience:       "PME",
		AwarenessLevel: "conscient du problème",
		Problems:       "suivi client difficile",
		Solution:       "CRM centralisé",
		Benefits:       "gain de temps",
		USP:            "IA intégrée",
		Features:       "automatisation",
		CTA:            "Essai gratuit",
		Tone:           "professionnelle",
		MainKeyword:    "CRM PME",
	}
}

func TestLanding_CRMProExample(t *testing.T) {
	for _, version := range Versions {
		t.Run(string(version), func(t *testing.T) {
			out, err := Landing(version, crmPro())
			require.NoError(t, err)

			for _, want := range []string{"CRM Pro", "PME", "CRM centralisé", "Essai gratuit"} {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestLanding_IsPure(t *testing.T) {
	product := crmPro()
	product.PrimaryColor = "#0044ff"

	for _, version := range Versions {
		first, err := Landing(version, product)
		require.NoError(t, err)
		second, err := Landing(version, product)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestLanding_V2IncludesBranding(t *testing.T) {
	product := crmPro()
	product.Brand = "Acme"
	product.PrimaryColor = "#112233"
	product.Location = "Dakar"

	out, err := Landing(V2, product)
	require.NoError(t, err)
	assert.Contains(t, out, "- Couleur principale : #112233")
	assert.Contains(t, out, "- Marque : Acme")
	assert.Contains(t, out, "- Zone géographique : Dakar")
	assert.NotContains(t, out, "Couleur de fond")

	v1, err := Landing(V1, product)
	require.NoError(t, err)
	assert.NotContains(t, v1, "#112233")
}

func TestLanding_UnknownVersion(t *testing.T) {
	_, err := Landing("v9", crmPro())
	assert.ErrorIs(t, err, ErrUnknownVersion)
}

func TestLanding_RejectsIncompleteProduct(t *testing.T) {
	product := crmPro()
	product.USP = "  "
	product.CTA = ""

	_, err := Landing(V1, product)
	require.ErrorIs(t, err, ErrIncompleteProduct)
	assert.Contains(t, err.Error(), "usp, cta")
}
