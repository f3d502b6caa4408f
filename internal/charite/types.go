package charite

// Publication is a normalized Forschungsdatenbank publication entry.
type Publication struct {
	Title           string           `json:"title"`
	Authors         []string         `json:"authors"`
	Year            int              `json:"year,omitempty"`
	DOI             string           `json:"doi,omitempty"`
	Journal         string           `json:"journal,omitempty"`
	JournalAbbrev   string           `json:"journal_abbrev,omitempty"`
	Volume          string           `json:"volume,omitempty"`
	Issue           string           `json:"issue,omitempty"`
	Pages           string           `json:"pages,omitempty"`
	Abstract        string           `json:"abstract,omitempty"`
	PublicationType string           `json:"publication_type,omitempty"`
	BookTitle       string           `json:"book_title,omitempty"`
	PubMedURL       string           `json:"pubmed_url,omitempty"`
	PMCURL          string           `json:"pmc_url,omitempty"`
	FulltextURL     string           `json:"fulltext_url,omitempty"`
	OpenAccess      bool             `json:"open_access,omitempty"`
	InternalAuthors []InternalAuthor `json:"internal_authors,omitempty"`
}

// InternalAuthor is a Charité-internal co-author on a publication,
// carrying the person token when the backend knows one.
type InternalAuthor struct {
	Surname   string `json:"surname"`
	FirstName string `json:"first_name,omitempty"`
	Token     string `json:"token,omitempty"`
	Type      string `json:"type,omitempty"`
}

// Coauthor is an entry from the co-author endpoint.
type Coauthor struct {
	Surname          string `json:"surname"`
	FirstName        string `json:"first_name,omitempty"`
	Token            string `json:"token,omitempty"`
	Type             string `json:"type,omitempty"`
	PublicationCount int    `json:"publication_count"`
}

// Profile is the expert profile summary.
type Profile struct {
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Group             string `json:"group,omitempty"`
	GroupEN           string `json:"group_en,omitempty"`
	ORCID             string `json:"orcid,omitempty"`
	TotalPublications int    `json:"total_publications"`
	InternalCoauthors int    `json:"internal_coauthors"`
	TotalCoauthors    int    `json:"total_coauthors"`
}

// Raw API payloads. Field names follow the German backend schema.

type publicationsResponse struct {
	Publikationen []publicationEntry `json:"publikationen"`
}

type publicationEntry struct {
	Publikation    publicationData  `json:"publikation"`
	Links          []publicationLink `json:"links"`
	InterneAutoren []internalPerson  `json:"interneAutoren"`
	OAStatus       bool              `json:"oaStatus"`
}

type publicationData struct {
	Titel             string      `json:"titel"`
	PublikationJahr   int         `json:"publikationJahr"`
	AutorenString     string      `json:"autorenString"`
	Abriss            string      `json:"abriss"`
	ExternPnTyp       string      `json:"externPnTyp"`
	Buchtitel         string      `json:"buchtitel"`
	QuelleIdentifier  string      `json:"quelleIdentifier"`
	QuelleIdentifier2 string      `json:"quelleIdentifier2"`
	QuelleLocation    string      `json:"quelleLocation"`
	Quelle            quelleData  `json:"quelle"`
}

type quelleData struct {
	Name     string `json:"name"`
	Langname string `json:"langname"`
}

type publicationLink struct {
	URL   string `json:"url"`
	Label string `json:"en"`
}

type internalPerson struct {
	Name    string       `json:"name"`
	Vorname string       `json:"vorname"`
	Person  *personToken `json:"person"`
}

type personToken struct {
	Token string `json:"token"`
	Type  string `json:"type"`
}

type coauthorsResponse struct {
	Autoren []coauthorEntry `json:"autoren"`
}

type coauthorEntry struct {
	AutorenPerson *autorenPerson `json:"autorenPerson"`
}

type autorenPerson struct {
	Name                string       `json:"name"`
	Vorname             string       `json:"vorname"`
	AnzahlPublikationen int          `json:"anzahlPublikationen"`
	Person              *personToken `json:"person"`
}

type profileResponse struct {
	MainInfo struct {
		Vorname  string `json:"vorname"`
		Nachname string `json:"nachname"`
		Gruppe   string `json:"gruppe"`
		GruppeEN string `json:"gruppeen"`
		ORCID    string `json:"orcid"`
	} `json:"mainInfo"`
	Publikationen    int `json:"publikationen"`
	InterneCoAutoren struct {
		Level1 int `json:"level1"`
	} `json:"interneCoAutoren"`
	Gesamt struct {
		Level1 int `json:"level1"`
	} `json:"gesamt"`
}
