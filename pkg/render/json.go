package render

import (
	"io"

	gojson "github.com/goccy/go-json"

	csvsource "github.com/ajitpratap0/slugger/pkg/connector/sources/csv"
	"github.com/ajitpratap0/slugger/pkg/engine"
	"github.com/ajitpratap0/slugger/pkg/errors"
	"github.com/ajitpratap0/slugger/pkg/models"
)

// Event names carried in the "event" field of every JSON document.
const (
	EventLoaded  = "loaded"
	EventPlayers = "players"
	EventSorted  = "sorted"
	EventSearch  = "search"
	EventRanking = "ranking"
	EventTeams   = "team_averages"
	EventFields  = "fields"
	EventSection = "section"
)

// JSON renders each result as one line of JSON.
type JSON struct {
	enc *gojson.Encoder
}

// NewJSON creates a JSON renderer writing to w.
func NewJSON(w io.Writer) *JSON {
	enc := gojson.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSON{enc: enc}
}

type loadedDoc struct {
	Event  string              `json:"event"`
	Source string              `json:"source"`
	Stats  csvsource.LoadStats `json:"stats"`
}

type playersDoc struct {
	Event   string           `json:"event"`
	Count   int              `json:"count"`
	Players []*models.Record `json:"players"`
}

type sortedDoc struct {
	Event     string `json:"event"`
	Key       string `json:"key"`
	Direction string `json:"direction"`
}

type searchDoc struct {
	Event string `json:"event"`
	ID    string `json:"id"`
	engine.SearchResult
}

type rankedPlayer struct {
	Rank int `json:"rank"`
	*models.Record
}

type rankingDoc struct {
	Event     string         `json:"event"`
	K         int            `json:"k"`
	Key       string         `json:"key"`
	Available int            `json:"available"`
	Players   []rankedPlayer `json:"players"`
}

type teamsDoc struct {
	Event string               `json:"event"`
	Teams engine.GroupAverages `json:"teams"`
}

type fieldDoc struct {
	Name    string `json:"name"`
	Numeric bool   `json:"numeric"`
}

type fieldsDoc struct {
	Event  string     `json:"event"`
	Fields []fieldDoc `json:"fields"`
}

type sectionDoc struct {
	Event string `json:"event"`
	Title string `json:"title"`
}

// Loaded implements Renderer.
func (j *JSON) Loaded(source string, stats csvsource.LoadStats) error {
	return j.encode(loadedDoc{Event: EventLoaded, Source: source, Stats: stats})
}

// Players implements Renderer.
func (j *JSON) Players(records []*models.Record) error {
	if records == nil {
		records = []*models.Record{}
	}
	return j.encode(playersDoc{Event: EventPlayers, Count: len(records), Players: records})
}

// Sorted implements Renderer.
func (j *JSON) Sorted(order engine.Ordering) error {
	return j.encode(sortedDoc{Event: EventSorted, Key: order.Key.String(), Direction: direction(order.Descending)})
}

// Search implements Renderer.
func (j *JSON) Search(id string, result engine.SearchResult) error {
	return j.encode(searchDoc{Event: EventSearch, ID: id, SearchResult: result})
}

// Ranking implements Renderer.
func (j *JSON) Ranking(k int, key models.Field, records []*models.Record, available int) error {
	ranked := make([]rankedPlayer, len(records))
	for i, r := range records {
		ranked[i] = rankedPlayer{Rank: i + 1, Record: r}
	}
	return j.encode(rankingDoc{Event: EventRanking, K: k, Key: key.String(), Available: available, Players: ranked})
}

// TeamAverages implements Renderer.
func (j *JSON) TeamAverages(groups engine.GroupAverages) error {
	if groups == nil {
		groups = engine.GroupAverages{}
	}
	return j.encode(teamsDoc{Event: EventTeams, Teams: groups})
}

// Fields implements Renderer.
func (j *JSON) Fields(fields []models.Field) error {
	docs := make([]fieldDoc, len(fields))
	for i, f := range fields {
		docs[i] = fieldDoc{Name: f.String(), Numeric: f.Numeric()}
	}
	return j.encode(fieldsDoc{Event: EventFields, Fields: docs})
}

// Section implements Renderer.
func (j *JSON) Section(title string) error {
	return j.encode(sectionDoc{Event: EventSection, Title: title})
}

func (j *JSON) encode(v interface{}) error {
	if err := j.enc.Encode(v); err != nil {
		return errors.Wrap(err, errors.ErrorTypeInternal, "failed to encode output")
	}
	return nil
}
