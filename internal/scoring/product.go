package scoring

// Product names a recommendable offering.
type Product string

// Product catalogue.
const (
	ProductDisblay Product = "Disblay"
	ProductTopiko  Product = "Topiko"
	ProductBundle  Product = "Topiko + Brandpreneuring"
	ProductHEBT    Product = "HEBT"
)

// Recommendation describes the product match returned to the funnel. The
// feature list, pricing and setup time are static catalogue data.
type Recommendation struct {
	Product    Product  `json:"product"`
	Confidence string   `json:"confidence"`
	Reason     string   `json:"reason"`
	Features   []string `json:"features"`
	Pricing    string   `json:"pricing"`
	SetupTime  string   `json:"setup_time"`
}

// productRule is one entry of the prioritized recommendation list.
type productRule struct {
	matches func(AnswerSet) bool
	build   func() Recommendation
}

// productRules is evaluated in order; the first matching rule wins. New
// rules are inserted at the right priority instead of growing an if chain.
var productRules = []productRule{
	{
		// Entry level: tiny budget or no presence at all.
		matches: func(a AnswerSet) bool {
			return a.Budget == BudgetBelow2K || a.DigitalStatus == StatusNoPresence
		},
		build: func() Recommendation {
			return Recommendation{
				Product:    ProductDisblay,
				Confidence: "high",
				Reason:     "Perfect starting point for digital presence",
				Features: []string{
					"Quick setup and deployment",
					"Basic online presence",
					"Mobile-friendly design",
					"WhatsApp integration",
				},
				Pricing:   "Under ₹2,000/month",
				SetupTime: "24-48 hours",
			}
		},
	},
	{
		// Premium custom build for app-minded top-band budgets.
		matches: func(a AnswerSet) bool {
			return a.Budget == Budget25KPlus && a.HasGoal(GoalApp)
		},
		build: func() Recommendation {
			return Recommendation{
				Product:    ProductHEBT,
				Confidence: "high",
				Reason:     "Advanced custom solutions for your requirements",
				Features: []string{
					"Custom app development",
					"Enterprise-grade features",
					"Full technical support",
					"Scalable architecture",
				},
				Pricing:   "₹25,000+/month",
				SetupTime: "4-8 weeks",
			}
		},
	},
	{
		// Branding bundle when brand building meets a serious budget.
		matches: func(a AnswerSet) bool {
			return a.HasGoal(GoalBrand) && (a.Budget == Budget10KTo25K || a.Budget == Budget25KPlus)
		},
		build: func() Recommendation {
			return Recommendation{
				Product:    ProductBundle,
				Confidence: "high",
				Reason:     "Complete brand building and digital presence solution",
				Features: []string{
					"Professional brand strategy",
					"Complete digital ecosystem",
					"Marketing campaign support",
					"Premium design and development",
				},
				Pricing:   "₹15,000-30,000/month",
				SetupTime: "2-4 weeks",
			}
		},
	},
}

// defaultRecommendation is the mid-tier fallback when no rule matches.
func defaultRecommendation() Recommendation {
	return Recommendation{
		Product:    ProductTopiko,
		Confidence: "medium",
		Reason:     "Comprehensive solution for growing businesses",
		Features: []string{
			"Professional website and app",
			"Lead management system",
			"Digital marketing tools",
			"Analytics and reporting",
		},
		Pricing:   "₹5,000-15,000/month",
		SetupTime: "1-2 weeks",
	}
}

// GetProductRecommendation walks the prioritized rule list and returns the
// first matching product. The overall score is accepted for interface
// parity with the funnel UI; current rules decide on answers alone.
func (s *Scorer) GetProductRecommendation(score int, answers AnswerSet) Recommendation {
	a := answers.Normalized()
	_ = score
	for _, rule := range productRules {
		if rule.matches(a) {
			return rule.build()
		}
	}
	return defaultRecommendation()
}
