package models

// SiteContent is the presentational copy of the marketing site
type SiteContent struct {
	Company     Company      `yaml:"company"`
	TechStack   []string     `yaml:"tech_stack"`
	ProofStats  []ProofStat  `yaml:"proof_stats"`
	Values      []Value      `yaml:"values"`
	Services    []Service    `yaml:"services"`
	Team        []TeamMember `yaml:"team"`
	CaseStudies []CaseStudy  `yaml:"case_studies"`
	Privacy     LegalDoc     `yaml:"privacy"`
	Terms       LegalDoc     `yaml:"terms"`
}

type Company struct {
	Name        string   `yaml:"name"`
	Tagline     string   `yaml:"tagline"`
	Description string   `yaml:"description"`
	Email       string   `yaml:"email"`
	Phone       string   `yaml:"phone"`
	Location    string   `yaml:"location"`
	TrustPoints []string `yaml:"trust_points"`
	About       []string `yaml:"about"`
}

// LegalDoc is a static policy page
type LegalDoc struct {
	Title       string         `yaml:"title"`
	LastUpdated string         `yaml:"last_updated"`
	Sections    []LegalSection `yaml:"sections"`
}

type LegalSection struct {
	Heading    string   `yaml:"heading"`
	Paragraphs []string `yaml:"paragraphs"`
	Items      []string `yaml:"items"`
}

type ProofStat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type Value struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Service struct {
	Headline string   `yaml:"headline"`
	Body     string   `yaml:"body"`
	TechTags []string `yaml:"tech_tags"`
	Wide     bool     `yaml:"wide"`
}

type TeamMember struct {
	Name   string   `yaml:"name"`
	Role   string   `yaml:"role"`
	Bio    string   `yaml:"bio"`
	Skills []string `yaml:"skills"`
	Email  string   `yaml:"email"`
}

// CaseStudy is a client engagement shown under /case-studies
type CaseStudy struct {
	Slug            string       `yaml:"slug"`
	Title           string       `yaml:"title"`
	Subtitle        string       `yaml:"subtitle"`
	Niche           string       `yaml:"niche"`
	Summary         string       `yaml:"summary"`
	MetaDescription string       `yaml:"meta_description"`
	Duration        string       `yaml:"duration"`
	ClientRegion    string       `yaml:"client_region"`
	Stack           []string     `yaml:"stack"`
	Challenge       string       `yaml:"challenge"`
	Solution        string       `yaml:"solution"`
	Results         []CaseResult `yaml:"results"`
	Lessons         []CaseLesson `yaml:"lessons"`
	Featured        bool         `yaml:"featured"`
}

type CaseResult struct {
	Metric      string `yaml:"metric"`
	Value       string `yaml:"value"`
	Description string `yaml:"description"`
}

type CaseLesson struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// FeaturedCaseStudies returns the case studies flagged for the home page
func (s *SiteContent) FeaturedCaseStudies() []CaseStudy {
	var featured []CaseStudy
	for _, cs := range s.CaseStudies {
		if cs.Featured {
			featured = append(featured, cs)
		}
	}
	return featured
}

// CaseStudyBySlug finds a case study by its URL slug
func (s *SiteContent) CaseStudyBySlug(slug string) (*CaseStudy, bool) {
	for i := range s.CaseStudies {
		if s.CaseStudies[i].Slug == slug {
			return &s.CaseStudies[i], true
		}
	}
	return nil, false
}
