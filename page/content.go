package page

// Card is a titled blurb used by the highlights, services and process sections.
type Card struct {
	Title  string
	Detail string
}

// AssetOption is one choice in a radio group.
type AssetOption struct {
	Value string
	Label string
}

type FAQ struct {
	Question string
	Answer   string
}

// Site is everything the landing page renders. Only the firm details vary
// between deployments.
type Site struct {
	FirmName     string
	CalendarURL  string
	HostedForm   string
	Headline     string
	Subheadlines []string
	Assets       []AssetOption
	Highlights   []Card
	Services     []Card
	Steps        []Card
	FAQs         []FAQ
	Disclosure   string
	Disclaimer   string
}

// DefaultSubheadline is shown when the rotation is not animated.
const DefaultSubheadline = "For Generations"

var Subheadlines = []string{
	"For Your Family",
	"For Generations",
	"With Certainty",
}

// PrimaryAssets lists the calculator's "Primary asset" choices. The first is
// selected by default; the choice does not change the projection.
var PrimaryAssets = []AssetOption{
	{"employer", "Employer retirement account (401k or similar)"},
	{"ira", "IRA (Traditional or Roth)"},
	{"cash", "Cash / Savings"},
	{"supplemental", "Exploring a supplemental strategy"},
}

func DefaultSite(firmName, hostedFormURL, disclaimer string) Site {
	return Site{
		FirmName:     firmName,
		CalendarURL:  "https://calendly.com/",
		HostedForm:   hostedFormURL,
		Headline:     "Build Wealth & Security",
		Subheadlines: Subheadlines,
		Assets:       PrimaryAssets,
		Highlights: []Card{
			{"Licensed Advisors", "Credentialed guidance with compliance-minded planning."},
			{"Long-Term Wealth Focus", "Strategies designed to build stability across life stages."},
			{"Family-First Planning", "Protection and legacy planning centered on your loved ones."},
		},
		Services: []Card{
			{"Family Protection", "Build a protection foundation that safeguards income, family goals, and long-term stability."},
			{"Life Insurance Products", "IULs, annuities, term life, and permanent coverage strategies tailored to your objectives."},
			{"Legacy & Wealth Transfer", "401(k) rollovers, IRA-to-Roth conversions, and beneficiary strategies to protect wealth across generations."},
			{"Retirement Income Planning", "Plan for dependable income streams and tax-efficient distribution in retirement."},
		},
		Steps: []Card{
			{"Discovery Call", "We learn your goals, timeline, and current coverage."},
			{"Wealth Blueprint", "Custom options comparing IULs, annuities, and protection layers."},
			{"Implementation", "We handle applications and keep you informed at every step."},
			{"Annual Review", "We monitor performance and adjust as your life evolves."},
		},
		FAQs: []FAQ{
			{"Is an IUL right for everyone?", "Not always. We compare options to determine if it fits your goals, budget, and risk tolerance."},
			{"How do annuities help with generational wealth?", "They can create reliable income streams and preserve principal, helping you avoid selling assets prematurely."},
			{"Do you work with families and business owners?", "Yes. We support both personal wealth planning and business continuity needs."},
		},
		Disclosure: "Insurance products are offered through licensed professionals. This information is for educational " +
			"purposes only and does not constitute tax or legal advice. Policy loans and withdrawals may reduce " +
			"cash value and death benefits.",
		Disclaimer: disclaimer,
	}
}
