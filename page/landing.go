// Package page renders the marketing landing page.
package page

import (
	"fmt"
	"io"
	"strings"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"wealth-site/domain"
	"wealth-site/service"
)

// Calculator seeds the wealth illustration with server-side values so the page
// is meaningful before any script runs.
type Calculator struct {
	Input  domain.ProjectionInput
	Result domain.ProjectionResult
}

// Render writes the full landing page to w.
func Render(w io.Writer, content Site, calc Calculator) error {
	return Landing(content, calc).Render(w)
}

func Landing(content Site, calc Calculator) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:       content.FirmName,
		Description: "Family protection, legacy planning and retirement income strategies.",
		Language:    "en",
		Head: []g.Node{
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			StyleEl(g.Raw(styles)),
		},
		Body: []g.Node{
			siteHeader(content),
			Main(
				hero(content),
				highlights(content.Highlights),
				servicesSection(content, calc),
				processSection(content),
				faqSection(content.FAQs),
			),
			siteFooter(content),
			Script(g.Raw(script)),
		},
	})
}

func siteHeader(content Site) g.Node {
	return Header(Class("site-header"),
		Span(Class("brand"), g.Text(content.FirmName)),
		Nav(
			A(Href("#services"), g.Text("Services")),
			A(Href("#process"), g.Text("Process")),
			A(Href("#faq"), g.Text("FAQ")),
			A(Class("button outline"), Href(content.CalendarURL), g.Text("Schedule a call")),
		),
	)
}

func hero(content Site) g.Node {
	return Section(Class("hero"),
		Span(Class("badge"), g.Text("Premium wealth strategy")),
		H1(g.Text(content.Headline)),
		P(Class("subheadline"), ID("subheadline"),
			Data("phrases", joinPhrases(content.Subheadlines)),
			g.Text(DefaultSubheadline),
		),
		Div(Class("actions"),
			A(Class("button"), Href(content.CalendarURL), g.Text("Book a strategy call")),
			A(Class("button outline"), Href("#contact"), g.Text("Request a custom plan")),
		),
	)
}

func joinPhrases(phrases []string) string {
	return strings.Join(phrases, "|")
}

func cards(items []Card) g.Node {
	return Div(Class("cards"),
		g.Map(items, func(item Card) g.Node {
			return Div(Class("card"),
				H3(g.Text(item.Title)),
				P(g.Text(item.Detail)),
			)
		}),
	)
}

func highlights(items []Card) g.Node {
	return Section(Class("highlights"), cards(items))
}

func servicesSection(content Site, calc Calculator) g.Node {
	return Section(ID("services"), Class("split"),
		Div(
			Span(Class("badge"), g.Text("Services")),
			H2(g.Text("Built For Family Security & Wealth Creation")),
			P(g.Text("We focus on strategies that combine protection with long-term wealth goals. Every plan is tailored to your family's story.")),
			cards(content.Services),
		),
		Div(Class("card calculator"),
			H3(g.Text("Wealth illustration")),
			P(g.Text("Estimate how your current assets can support future goals.")),
			calculator(content, calc),
		),
	)
}

func numberField(label, name string, value string, attrs ...g.Node) g.Node {
	return Label(
		Span(g.Text(label)),
		Input(append([]g.Node{Type("number"), Name(name), ID("calc-" + name), Value(value)}, attrs...)...),
	)
}

func calculator(content Site, calc Calculator) g.Node {
	in := calc.Input
	res := calc.Result

	return Form(ID("calculator"), Action("/api/projection/illustration.pdf"), Method("get"),
		P(Class("fine"), g.Text(content.Disclaimer)),
		assetChoices(content.Assets),
		Div(Class("inputs"),
			numberField("Current balance", "balance", fmt.Sprintf("%.0f", in.StartingBalance), Min("0"), Max(fmt.Sprintf("%.0f", service.MaxStartingBalance))),
			numberField("Monthly contribution", "monthly", fmt.Sprintf("%.0f", in.MonthlyContribution), Min("0"), Max(fmt.Sprintf("%.0f", service.MaxMonthlyContribution))),
			numberField("Years to grow", "years", fmt.Sprintf("%d", in.HorizonYears), Min(fmt.Sprint(service.MinHorizonYears)), Max(fmt.Sprint(service.MaxHorizonYears))),
		),
		Div(Class("result"),
			P(Class("eyebrow"), g.Text("Estimated Future Value")),
			P(Class("big"), ID("calc-future"), g.Text(service.FormatUSD(res.FutureValue))),
			P(ID("calc-caption"), g.Textf("Illustrative estimate assuming long-term growth over %d years.", res.HorizonYears)),
			P(g.Text("Total contributions: "), Span(ID("calc-contributions"), g.Text(service.FormatUSD(res.TotalContributions)))),
			P(g.Text("Estimated growth (hypothetical): "), Span(ID("calc-growth"), g.Text(service.FormatUSD(res.Growth)))),
		),
		Button(Class("button"), Type("submit"), g.Text("Download illustration (PDF)")),
		Div(Class("card review"),
			A(Class("button"), Href("#contact"), g.Text("Request a personalized review")),
			P(g.Text("An advisor can walk through investment options, tax considerations, and strategies tailored to your situation.")),
		),
	)
}

func assetChoices(assets []AssetOption) g.Node {
	if len(assets) == 0 {
		return nil
	}

	choices := make([]g.Node, 0, len(assets))
	for i, asset := range assets {
		choices = append(choices, Label(Class("asset"),
			g.Text(asset.Label),
			Input(Type("radio"), Name("primaryAsset"), Value(asset.Value), g.If(i == 0, Checked())),
		))
	}

	return FieldSet(Class("assets"),
		Legend(Class("eyebrow"), g.Text("Primary asset")),
		g.Group(choices),
	)
}

func processSection(content Site) g.Node {
	steps := make([]g.Node, 0, len(content.Steps))
	for i, step := range content.Steps {
		steps = append(steps, Li(
			Span(Class("step"), g.Textf("%02d", i+1)),
			Div(H3(g.Text(step.Title)), P(g.Text(step.Detail))),
		))
	}

	return Section(ID("process"), Class("split"),
		Div(
			Span(Class("badge"), g.Text("Our process")),
			H2(g.Text("A clear, high-touch path to confidence.")),
			P(g.Text("We believe wealth strategy is deeply personal. Each client receives a tailored roadmap backed by education and transparency.")),
			Ol(Class("steps"), g.Group(steps)),
		),
		Div(Class("card"), ID("contact"),
			H3(g.Text("Start the conversation")),
			contactForm(content),
			P(Class("fine"), g.Text("By submitting, you agree to be contacted about insurance and wealth planning services.")),
		),
	)
}

func contactForm(content Site) g.Node {
	return Form(ID("contact-form"), Action("/api/contact"), Method("post"), Data("hosted-form", content.HostedForm),
		Div(Class("row"),
			Input(Name("firstName"), Placeholder("First name"), Required()),
			Input(Name("lastName"), Placeholder("Last name"), Required()),
		),
		Input(Name("email"), Type("email"), Placeholder("Email"), Required()),
		Input(Name("phone"), Type("tel"), Placeholder("Phone")),
		Textarea(Name("message"), Placeholder("Tell us about your goals"), Rows("5"), Required()),
		Button(Class("button"), Type("submit"), g.Text("Send message")),
		P(Class("status"), ID("contact-status"), g.Attr("role", "status")),
	)
}

func faqSection(faqs []FAQ) g.Node {
	return Section(ID("faq"),
		H2(g.Text("Frequently asked questions")),
		g.Map(faqs, func(f FAQ) g.Node {
			return Details(Class("faq"),
				Summary(g.Text(f.Question)),
				P(g.Text(f.Answer)),
			)
		}),
	)
}

func siteFooter(content Site) g.Node {
	return Footer(Class("site-footer"),
		P(g.Textf("%s specializes in strategies designed to protect families and create multi-generational confidence.", content.FirmName)),
		Div(Class("links"), Span(g.Text("Privacy")), Span(g.Text("Terms")), Span(g.Text("Disclosures"))),
		P(Class("fine"), g.Text(content.Disclosure)),
	)
}
