package validate

import "regexp"

// knownTopics is the curated allow-list of educational concept phrases. An
// exact match here accepts the request before any other heuristic runs.
var knownTopics = map[string]struct{}{
	// technology
	"machine learning":        {},
	"artificial intelligence": {},
	"deep learning":           {},
	"neural networks":         {},
	"quantum computing":       {},
	"blockchain":              {},
	"cryptography":            {},
	"cloud computing":         {},
	"operating systems":       {},
	"computer networks":       {},
	"data structures":         {},
	"algorithms":              {},
	"databases":               {},
	"cybersecurity":           {},
	"compilers":               {},
	"recursion":               {},
	"big o notation":          {},
	"api":                     {},
	"http":                    {},
	"dns":                     {},

	// science
	"photosynthesis":    {},
	"evolution":         {},
	"gravity":           {},
	"relativity":        {},
	"thermodynamics":    {},
	"quantum mechanics": {},
	"electromagnetism":  {},
	"dna":               {},
	"rna":               {},
	"genetics":          {},
	"climate change":    {},
	"plate tectonics":   {},
	"black holes":       {},
	"entropy":           {},
	"osmosis":           {},
	"mitosis":           {},

	// math
	"calculus":               {},
	"linear algebra":         {},
	"statistics":             {},
	"probability":            {},
	"geometry":               {},
	"trigonometry":           {},
	"game theory":            {},
	"number theory":          {},
	"differential equations": {},
	"bayes theorem":          {},

	// business
	"supply and demand": {},
	"inflation":         {},
	"compound interest": {},
	"stock market":      {},
	"marketing":         {},
	"accounting":        {},
	"microeconomics":    {},
	"macroeconomics":    {},
	"opportunity cost":  {},

	// medical
	"immune system": {},
	"vaccines":      {},
	"antibiotics":   {},
	"anatomy":       {},
	"metabolism":    {},
	"neurons":       {},
	"homeostasis":   {},

	// humanities
	"renaissance":    {},
	"enlightenment":  {},
	"stoicism":       {},
	"existentialism": {},
	"democracy":      {},
	"capitalism":     {},
	"socialism":      {},
	"linguistics":    {},
}

// firstNames is the block-list of common given names. An exact match is
// rejected outright; a two-word topic starting with one of these is rejected
// by the name heuristic unless the second word looks like a topic
// continuation.
var firstNames = map[string]struct{}{
	"james": {}, "john": {}, "robert": {}, "michael": {}, "william": {},
	"david": {}, "richard": {}, "joseph": {}, "thomas": {}, "charles": {},
	"daniel": {}, "matthew": {}, "anthony": {}, "mark": {}, "steven": {},
	"andrew": {}, "paul": {}, "joshua": {}, "kevin": {}, "brian": {},
	"george": {}, "edward": {}, "ronald": {}, "ryan": {}, "jacob": {},
	"peter": {}, "frank": {}, "scott": {}, "eric": {}, "stephen": {},
	"mary": {}, "patricia": {}, "jennifer": {}, "linda": {}, "elizabeth": {},
	"barbara": {}, "susan": {}, "jessica": {}, "sarah": {}, "karen": {},
	"nancy": {}, "lisa": {}, "margaret": {}, "sandra": {}, "ashley": {},
	"emily": {}, "emma": {}, "olivia": {}, "rachel": {}, "laura": {},
	"amanda": {}, "nicole": {}, "anna": {}, "maria": {}, "kate": {},
	"alex": {}, "sam": {}, "chris": {}, "mike": {}, "tom": {},
}

// continuations are second words that make a name-like first word read as a
// topic instead of a person ("markov" is not in the name list, but "newton
// law" and similar must pass).
var continuations = map[string]struct{}{
	"learning":     {},
	"theory":       {},
	"theorem":      {},
	"engineering":  {},
	"algorithm":    {},
	"method":       {},
	"principle":    {},
	"law":          {},
	"laws":         {},
	"equation":     {},
	"equations":    {},
	"effect":       {},
	"model":        {},
	"process":      {},
	"system":       {},
	"systems":      {},
	"analysis":     {},
	"distribution": {},
	"transform":    {},
	"series":       {},
	"constant":     {},
	"number":       {},
	"numbers":      {},
	"sequence":     {},
	"cycle":        {},
	"paradox":      {},
	"experiment":   {},
	"mechanics":    {},
	"notation":     {},
	"diagram":      {},
}

// vagueTopics are bare interrogatives and fillers that carry no subject.
var vagueTopics = map[string]struct{}{
	"what": {}, "why": {}, "how": {}, "when": {}, "where": {}, "who": {},
	"which": {}, "anything": {}, "something": {}, "everything": {},
	"nothing": {}, "stuff": {}, "things": {}, "it": {}, "this": {},
	"that": {}, "help": {}, "idk": {}, "hmm": {}, "umm": {}, "ok": {},
	"okay": {}, "yes": {}, "no": {}, "maybe": {},
}

// offTopicPatterns reject conversational, personal, and non-educational
// queries before they reach the provider. Matched case-insensitively against
// the lower-cased trimmed topic.
var offTopicPatterns = []*regexp.Regexp{
	// greetings and small talk
	regexp.MustCompile(`^(hi|hiya|hello|hey|yo|sup|howdy|good (morning|afternoon|evening))\b`),
	regexp.MustCompile(`\bhow are you\b`),
	// meta/identity questions about the assistant
	regexp.MustCompile(`\b(who|what) (are|r) (you|u)\b`),
	regexp.MustCompile(`\byour name\b`),
	regexp.MustCompile(`\bare you (a |an )?(ai|bot|robot|human|real)\b`),
	// entertainment and gossip
	regexp.MustCompile(`\b(movie|film|celebrity|celebrities|gossip|tiktok|instagram|youtube|netflix|song|lyrics|album|kardashian)\b`),
	// relationships and personal life
	regexp.MustCompile(`\b(girlfriend|boyfriend|crush|dating|marry|divorce|breakup)\b`),
	regexp.MustCompile(`\bmy (wife|husband|ex|mom|dad|friend)\b`),
	// food and commerce
	regexp.MustCompile(`\b(recipe|restaurant|pizza|burger|takeout|discount|coupon|cheapest)\b`),
	regexp.MustCompile(`\b(buy|purchase|price of|how much does)\b`),
	// weather, sports, news
	regexp.MustCompile(`\b(weather|forecast|temperature today)\b`),
	regexp.MustCompile(`\b(football|basketball|cricket|baseball|soccer) (score|scores|game|match)\b`),
	regexp.MustCompile(`\b(news today|headlines|latest news)\b`),
	// keyboard mashing and test input
	regexp.MustCompile(`^(test|testing|(asdf)+|qwerty|zxcv|foo|bar|foobar)$`),
	regexp.MustCompile(`^\d+$`),
}

// isRepeatedRune reports whether s is one non-newline character repeated four
// or more times. It stands in for the off-topic pattern `^(.)\1{3,}$`, which
// Go's regexp engine cannot compile because backreferences are unsupported.
func isRepeatedRune(s string) bool {
	r := []rune(s)
	if len(r) < 4 || r[0] == '\n' {
		return false
	}
	for _, c := range r[1:] {
		if c != r[0] {
			return false
		}
	}
	return true
}

// academicKeywords accept a topic when any of them appears as a substring.
var academicKeywords = []string{
	"theory", "theorem", "algorithm", "science", "engineering",
	"mathematics", "physics", "chemistry", "biology", "economics",
	"psychology", "philosophy", "history", "computing", "programming",
	"learning", "network", "quantum", "statistic", "probability",
	"analysis", "structure", "function", "principle", "equation",
	"mechanics", "dynamics", "synthesis", "anatomy", "genome",
	"molecule", "immunolog", "linguistic", "architecture", "protocol",
	"encryption", "calculus", "geometry", "inflation", "photosynthesis",
}

// technicalSuffixes accept short single-word topics that read as fields of
// study or technical terms.
var technicalSuffixes = []string{
	"ology", "onomy", "ography", "istry", "ics", "tion", "sion",
	"ism", "ity", "ence", "ance", "ware", "graphy", "metry",
}
