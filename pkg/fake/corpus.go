package fake

import "github.com/getmockd/fakegen/pkg/locale"

// corpus holds the locale-dependent word lists. Lists a locale leaves
// empty are filled from the EN corpus at init.
type corpus struct {
	words      []string
	firstNames []string
	lastNames  []string
	titles     []string
	suffixes   []string

	// familyFirst renders full names as "<last><sep><first>".
	familyFirst bool
	// period ends a sentence.
	period string
}

var corpora = map[locale.Locale]*corpus{
	locale.EN:   &enCorpus,
	locale.JaJP: &jaCorpus,
	locale.ArSA: &arCorpus,
	locale.FrFR: &frCorpus,
	locale.PtBR: &ptCorpus,
	locale.ZhCN: &zhCNCorpus,
	locale.ZhTW: &zhTWCorpus,
}

func init() {
	for _, c := range corpora {
		fill(&c.words, enCorpus.words)
		fill(&c.firstNames, enCorpus.firstNames)
		fill(&c.lastNames, enCorpus.lastNames)
		fill(&c.titles, enCorpus.titles)
		fill(&c.suffixes, enCorpus.suffixes)
		if c.period == "" {
			c.period = "."
		}
	}
}

func fill(dst *[]string, src []string) {
	if len(*dst) == 0 {
		*dst = src
	}
}

func corpusFor(loc locale.Locale) *corpus {
	if c, ok := corpora[loc]; ok {
		return c
	}
	return &enCorpus
}

// =============================================================================
// Locale-independent data
// =============================================================================

// userAgents contains realistic browser user agent strings.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:121.0) Gecko/20100101 Firefox/121.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.0.0",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Mobile/15E148 Safari/604.1",
	"Mozilla/5.0 (iPad; CPU OS 17_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Mobile/15E148 Safari/604.1",
	"Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.6099.43 Mobile Safari/537.36",
	"curl/8.5.0",
}

var freeEmailProviders = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "icloud.com",
	"proton.me", "aol.com", "gmx.com", "mail.com", "zoho.com",
}

var domainSuffixes = []string{
	"com", "net", "org", "io", "dev", "info", "biz", "co", "app", "name",
}

// safeEmailDomains are reserved by RFC 2606 and never deliver mail.
var safeEmailDomains = []string{"example.com", "example.net", "example.org"}

// usernameStems are ASCII name stems for usernames and email local parts,
// used for every locale so addresses stay ASCII.
var usernameStems = []string{
	"alice", "bob", "carol", "dave", "erin", "frank", "grace", "heidi",
	"ivan", "judy", "mallory", "niaj", "olivia", "peggy", "rupert", "sybil",
	"trent", "victor", "walter", "yuki", "haruto", "sakura", "mei", "wei",
	"lucas", "camille", "omar", "layla", "joao", "ana",
}

// colors contains color names.
var colors = []string{
	"Crimson", "Azure", "Emerald", "Ivory", "Coral",
	"Indigo", "Amber", "Jade", "Scarlet", "Turquoise",
	"Lavender", "Maroon", "Teal", "Orchid", "Cyan",
	"Magenta", "Gold", "Silver", "Pearl", "Sapphire",
}

var companySuffixes = []string{
	"Inc", "LLC", "Group", "and Sons", "Ltd", "Corp", "Holdings", "Partners",
}

// professions combine seniority, field and role, e.g. "Senior Data Analyst".
var (
	jobLevels = []string{"Senior", "Junior", "Lead", "Principal", "Staff"}
	jobFields = []string{
		"Software", "Data", "Product", "Marketing", "Sales",
		"Operations", "Security", "Infrastructure", "Quality", "Research",
	}
	jobRoles = []string{
		"Engineer", "Analyst", "Manager", "Designer", "Architect",
		"Consultant", "Developer", "Specialist", "Coordinator", "Strategist",
	}
)

var industries = []string{
	"Accounting", "Airlines/Aviation", "Automotive", "Banking", "Biotechnology",
	"Computer Software", "Construction", "Consumer Electronics", "E-Learning",
	"Financial Services", "Food & Beverages", "Health, Wellness and Fitness",
	"Hospitality", "Insurance", "Logistics and Supply Chain", "Media Production",
	"Pharmaceuticals", "Real Estate", "Renewables & Environment", "Telecommunications",
}

var buzzwords = []string{
	"synergy", "paradigm", "leverage", "holistic", "scalable", "disruptive",
	"omnichannel", "blockchain", "cloud-native", "frictionless", "agile",
	"bleeding-edge", "mission-critical", "end-to-end", "best-of-breed",
	"data-driven", "zero-trust", "next-generation", "real-time", "turnkey",
}

// statusCodes lists the status codes registered with IANA and their
// reason phrases.
var statusCodes = []struct {
	code   int
	reason string
}{
	{100, "Continue"}, {101, "Switching Protocols"}, {102, "Processing"}, {103, "Early Hints"},
	{200, "OK"}, {201, "Created"}, {202, "Accepted"}, {203, "Non-Authoritative Information"},
	{204, "No Content"}, {205, "Reset Content"}, {206, "Partial Content"}, {207, "Multi-Status"},
	{208, "Already Reported"}, {226, "IM Used"},
	{300, "Multiple Choices"}, {301, "Moved Permanently"}, {302, "Found"}, {303, "See Other"},
	{304, "Not Modified"}, {305, "Use Proxy"}, {307, "Temporary Redirect"}, {308, "Permanent Redirect"},
	{400, "Bad Request"}, {401, "Unauthorized"}, {402, "Payment Required"}, {403, "Forbidden"},
	{404, "Not Found"}, {405, "Method Not Allowed"}, {406, "Not Acceptable"},
	{407, "Proxy Authentication Required"}, {408, "Request Timeout"}, {409, "Conflict"},
	{410, "Gone"}, {411, "Length Required"}, {412, "Precondition Failed"},
	{413, "Content Too Large"}, {414, "URI Too Long"}, {415, "Unsupported Media Type"},
	{416, "Range Not Satisfiable"}, {417, "Expectation Failed"}, {418, "I'm a teapot"},
	{421, "Misdirected Request"}, {422, "Unprocessable Content"}, {423, "Locked"},
	{424, "Failed Dependency"}, {425, "Too Early"}, {426, "Upgrade Required"},
	{428, "Precondition Required"}, {429, "Too Many Requests"},
	{431, "Request Header Fields Too Large"}, {451, "Unavailable For Legal Reasons"},
	{500, "Internal Server Error"}, {501, "Not Implemented"}, {502, "Bad Gateway"},
	{503, "Service Unavailable"}, {504, "Gateway Timeout"}, {505, "HTTP Version Not Supported"},
	{506, "Variant Also Negotiates"}, {507, "Insufficient Storage"}, {508, "Loop Detected"},
	{510, "Not Extended"}, {511, "Network Authentication Required"},
}

// passwordChars is the alphabet passwords are drawn from.
const passwordChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*"
