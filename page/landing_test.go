package page

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wealth-site/domain"
	"wealth-site/service"
)

func render(t *testing.T) string {
	t.Helper()

	in := domain.ProjectionInput{
		StartingBalance:     service.DefaultBalance,
		MonthlyContribution: service.DefaultContribution,
		HorizonYears:        service.DefaultHorizonYears,
	}
	site := DefaultSite("Trupath Wealth", "https://forms.example.com/t/abc", service.Disclaimer)

	var b strings.Builder
	require.NoError(t, Render(&b, site, Calculator{Input: in, Result: service.Project(in)}))
	return b.String()
}

func TestRender_Sections(t *testing.T) {
	html := render(t)

	assert.True(t, strings.HasPrefix(strings.ToLower(html), "<!doctype html>"))
	for _, want := range []string{
		`<title>Trupath Wealth</title>`,
		`id="services"`,
		`id="process"`,
		`id="faq"`,
		`id="contact-form"`,
		`action="/api/contact"`,
		"Is an IUL right for everyone?",
		"Family Protection",
		"Annual Review",
		DefaultSubheadline,
	} {
		assert.Contains(t, html, want)
	}
}

func TestRender_SeedsCalculator(t *testing.T) {
	html := render(t)

	assert.Contains(t, html, `id="calc-future">$826,676<`)
	assert.Contains(t, html, `id="calc-contributions">$312,000<`)
	assert.Contains(t, html, "over 20 years")
	assert.Contains(t, html, `value="180000"`)
}

func TestRender_EscapesFirmName(t *testing.T) {
	site := DefaultSite("<b>Firm</b>", "", "")

	var b strings.Builder
	require.NoError(t, Render(&b, site, Calculator{}))
	assert.NotContains(t, b.String(), "<b>Firm</b>")
}

func TestJoinPhrases(t *testing.T) {
	assert.Equal(t, "For Your Family|For Generations|With Certainty", joinPhrases(Subheadlines))
	assert.Equal(t, "", joinPhrases(nil))
}

func TestRender_CalculatorExtras(t *testing.T) {
	html := render(t)

	assert.Contains(t, html, "Primary asset")
	for _, asset := range PrimaryAssets {
		assert.Contains(t, html, `value="`+asset.Value+`"`)
		assert.Contains(t, html, asset.Label)
	}
	assert.Contains(t, html, `name="primaryAsset" value="employer" checked`)
	assert.Equal(t, 1, strings.Count(html, " checked>"))
	assert.Contains(t, html, "Request a personalized review")
	assert.Contains(t, html, `href="#contact"`)
}

func TestRender_HostedFormFallbackIsWired(t *testing.T) {
	html := render(t)

	assert.Contains(t, html, `data-hosted-form="https://forms.example.com/t/abc"`)
	assert.Contains(t, script, "form.dataset.hostedForm")
	for _, param := range []string{"first_name", "last_name", "email", "phone", "message"} {
		assert.Contains(t, script, param)
	}
}

func TestScript_DropsStaleProjections(t *testing.T) {
	assert.Contains(t, script, "var seq = ++latest;")
	assert.Contains(t, script, "if (seq !== latest) { return; }")
}
