package grading

// ruleInput is the slice of an evaluation a rule is allowed to read.
type ruleInput struct {
	OER     float64
	CapRate float64
	Vacancy float64
	IRRAdj  float64
}

// rule is one independently evaluable scoring rule: a condition over a
// single metric, a (possibly profile-weighted) score delta, and the flag
// appended when it fires. Conditions within a metric band are mutually
// exclusive, so evaluation order only matters for flag ordering.
type rule struct {
	metric string
	when   func(in ruleInput) bool
	delta  func(w Weights) float64
	flag   string
}

func fixed(d float64) func(Weights) float64 {
	return func(Weights) float64 { return d }
}

// rules is the ordered rule set. Flags are emitted in this order.
var rules = []rule{
	{
		metric: "oer",
		when:   func(in ruleInput) bool { return in.OER > 0.55 },
		delta:  func(w Weights) float64 { return -w.OERHighPenalty },
		flag:   "High operating expense ratio (>55%).",
	},
	{
		metric: "oer",
		when:   func(in ruleInput) bool { return in.OER > 0.45 && in.OER <= 0.55 },
		delta:  fixed(-10),
		flag:   "Elevated operating expense ratio (>45%).",
	},
	{
		metric: "oer",
		when:   func(in ruleInput) bool { return in.OER < 0.25 },
		delta:  fixed(-6),
		flag:   "Unusually low expense ratio - verify inputs.",
	},
	{
		metric: "cap_rate",
		when:   func(in ruleInput) bool { return in.CapRate <= 0 },
		delta:  fixed(-18),
		flag:   "Cap rate unavailable - missing NOI or price.",
	},
	{
		metric: "cap_rate",
		when:   func(in ruleInput) bool { return in.CapRate > 0 && in.CapRate < 0.045 },
		delta:  func(w Weights) float64 { return -w.CapLowPenalty },
		flag:   "Low cap rate - thin yield.",
	},
	{
		metric: "cap_rate",
		when:   func(in ruleInput) bool { return in.CapRate > 0.09 },
		delta:  fixed(4),
		flag:   "High cap rate - verify condition/risks.",
	},
	{
		metric: "vacancy",
		when:   func(in ruleInput) bool { return in.Vacancy > 0.12 },
		delta:  fixed(-10),
		flag:   "High vacancy assumption (>12%).",
	},
	{
		metric: "vacancy",
		when:   func(in ruleInput) bool { return in.Vacancy < 0.04 },
		delta:  fixed(-4),
		flag:   "Very low vacancy - confirm market realism.",
	},
	{
		metric: "irr",
		when:   func(in ruleInput) bool { return in.IRRAdj < 0.08 },
		delta:  fixed(-8),
		flag:   "Low IRR (<8%) in base case.",
	},
	{
		metric: "irr",
		when:   func(in ruleInput) bool { return in.IRRAdj > 0.18 },
		delta:  func(w Weights) float64 { return w.IRRHighBonus },
		flag:   "High IRR (>18%) - double-check assumptions.",
	},
}
