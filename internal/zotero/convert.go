package zotero

import (
	"strconv"
	"strings"

	"github.com/bih-ceir/zotero-comfort/internal/pubrecord"
)

// ItemFromRecord converts a publication record into a Zotero item payload.
func ItemFromRecord(rec pubrecord.Record) ItemData {
	data := ItemData{
		ItemType:         "journalArticle",
		Title:            rec.Title,
		AbstractNote:     rec.Abstract,
		PublicationTitle: rec.Journal,
		DOI:              rec.DOI,
		URL:              rec.URL,
	}

	if rec.Year != 0 {
		data.Date = strconv.Itoa(rec.Year)
	}

	for _, name := range rec.Authors {
		data.Creators = append(data.Creators, CreatorFromName(name))
	}

	var extra []string
	if rec.PMID != "" {
		extra = append(extra, "PMID: "+rec.PMID)
	}
	if rec.PMCID != "" {
		extra = append(extra, "PMCID: "+rec.PMCID)
	}
	if len(rec.Provenance) > 0 {
		extra = append(extra, "Team: "+strings.Join(rec.Provenance, ", "))
	}
	data.Extra = strings.Join(extra, "\n")

	return data
}

// CreatorFromName parses an author name into a Zotero creator. "Last, First"
// splits into name parts; anything else is kept as a single-field name.
func CreatorFromName(name string) Creator {
	if last, first, ok := strings.Cut(name, ","); ok {
		return Creator{
			CreatorType: "author",
			FirstName:   strings.TrimSpace(first),
			LastName:    strings.TrimSpace(last),
		}
	}
	return Creator{CreatorType: "author", Name: strings.TrimSpace(name)}
}

// RecordFromItem converts a library item back into a publication record.
func RecordFromItem(item Item) pubrecord.Record {
	rec := pubrecord.Record{
		DOI:      item.Data.DOI,
		Title:    item.Data.Title,
		Abstract: item.Data.AbstractNote,
		Journal:  item.Data.PublicationTitle,
		URL:      item.Data.URL,
		Year:     pubrecord.ExtractYear(item.Data.Date),
	}

	for _, c := range item.Data.Creators {
		if c.CreatorType != "" && c.CreatorType != "author" {
			continue
		}
		switch {
		case c.LastName != "" && c.FirstName != "":
			rec.Authors = append(rec.Authors, c.LastName+", "+c.FirstName)
		case c.LastName != "":
			rec.Authors = append(rec.Authors, c.LastName)
		case c.Name != "":
			rec.Authors = append(rec.Authors, c.Name)
		}
	}

	return rec
}
