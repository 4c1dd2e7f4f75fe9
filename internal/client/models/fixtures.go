package models

import (
	"strconv"
	"time"
)

// MemberCategory splits the directory between retreat participants and
// service teams.
type MemberCategory string

const (
	CategoryParticipant MemberCategory = "Encontrista"
	CategoryTeam        MemberCategory = "Equipe"
)

// Circles are the colour groups participants are split into.
var Circles = []string{"Vermelho", "Verde", "Amarelo", "Azul"}

// Member is one entry of the Listão.
type Member struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Nickname  string         `json:"nickname"`
	Year      int            `json:"year"`
	Contact   string         `json:"contact"`
	Category  MemberCategory `json:"category"`
	Team      string         `json:"team"`
	Instagram string         `json:"instagram"`
	PhotoURL  string         `json:"photoUrl"`
}

// EventType classifies agenda entries.
type EventType string

const (
	EventMeeting   EventType = "Reunião"
	EventFormation EventType = "Formação"
	EventRetreat   EventType = "Encontro"
	EventSocial    EventType = "Social"
)

// Event is one agenda entry. Date is YYYY-MM-DD and Time HH:MM, both local.
type Event struct {
	ID       string    `json:"id"`
	Theme    string    `json:"theme"`
	Date     string    `json:"date"`
	Time     string    `json:"time"`
	Type     EventType `json:"type"`
	Location string    `json:"location"`
}

// Start combines Date and Time in loc. ok is false when Date is unparseable;
// a missing or bad Time yields midnight.
func (e Event) Start(loc *time.Location) (t time.Time, ok bool) {
	d, err := time.ParseInLocation(time.DateOnly, e.Date, loc)
	if err != nil {
		return time.Time{}, false
	}
	if hm, err := time.Parse("15:04", e.Time); err == nil {
		d = d.Add(time.Duration(hm.Hour())*time.Hour + time.Duration(hm.Minute())*time.Minute)
	}
	return d, true
}

// Rarity of a relic.
type Rarity string

const (
	RarityCommon    Rarity = "Comum"
	RarityRare      Rarity = "Rara"
	RarityEpic      Rarity = "Épica"
	RarityLegendary Rarity = "Lendária"
)

// Relic is an achievement definition from relics.json.
type Relic struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rarity      Rarity `json:"rarity"`
	Icon        string `json:"icon"`
}

// NumericID returns the id as an integer, or -1 when it is not numeric.
func (r Relic) NumericID() int {
	n, err := strconv.Atoi(r.ID)
	if err != nil {
		return -1
	}
	return n
}

// ChallengeCategory groups challenges.
type ChallengeCategory string

const (
	ChallengeSpiritual ChallengeCategory = "Spiritual"
	ChallengeService   ChallengeCategory = "Service"
	ChallengeCommunity ChallengeCategory = "Community"
)

// Announcement is one notice on the home page.
type Announcement struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image"`
	Tag         string `json:"tag"`
}

// Challenge is a point-earning task ("Desafio").
type Challenge struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Points    int               `json:"points"`
	Category  ChallengeCategory `json:"category"`
	Completed bool              `json:"completed"`
}
