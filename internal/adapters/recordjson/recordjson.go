// Package recordjson maps terminal output records to their JSON shape.
package recordjson

import "github.com/bnema/netrun/internal/domain"

const (
	KindText = "text"
	KindLink = "link"
	KindRaw  = "raw"
)

type Record struct {
	Kind     string `json:"kind"`
	Text     string `json:"text,omitempty"`
	Style    string `json:"style,omitempty"`
	Dashes   string `json:"dashes,omitempty"`
	Hostname string `json:"hostname,omitempty"`
	Value    any    `json:"value,omitempty"`
}

func From(r domain.Record) Record {
	switch rec := r.(type) {
	case domain.TextLine:
		return Record{Kind: KindText, Text: rec.Text, Style: string(rec.Style)}
	case domain.Link:
		return Record{Kind: KindLink, Dashes: rec.Dashes, Hostname: rec.Hostname}
	case domain.RawContent:
		return Record{Kind: KindRaw, Value: rec.Value}
	default:
		return Record{Kind: KindRaw}
	}
}

func (r Record) Domain() domain.Record {
	switch r.Kind {
	case KindText:
		return domain.TextLine{Text: r.Text, Style: domain.Style(r.Style)}
	case KindLink:
		return domain.Link{Dashes: r.Dashes, Hostname: r.Hostname}
	default:
		return domain.RawContent{Value: r.Value}
	}
}

func FromAll(records []domain.Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		out = append(out, From(r))
	}
	return out
}
