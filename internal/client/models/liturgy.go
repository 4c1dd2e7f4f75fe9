package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Reading slots of the provider document.
const (
	SlotFirstReading  = "primeiraLeitura"
	SlotPsalm         = "salmo"
	SlotSecondReading = "segundaLeitura"
	SlotGospel        = "evangelho"
)

// Reading is one scripture passage. Title and Refrain are optional; Refrain
// is only set on psalms.
type Reading struct {
	Reference string
	Title     string
	Text      string
	Refrain   string
}

// UnmarshalJSON accepts both key spellings the provider has used
// ("referencia"/"referencia_leitura", "texto"/"texto_leitura").
func (r *Reading) UnmarshalJSON(b []byte) error {
	var raw struct {
		Referencia        string `json:"referencia"`
		ReferenciaLeitura string `json:"referencia_leitura"`
		Titulo            string `json:"titulo"`
		Texto             string `json:"texto"`
		TextoLeitura      string `json:"texto_leitura"`
		Refrao            string `json:"refrao"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*r = Reading{
		Reference: firstNonEmpty(raw.Referencia, raw.ReferenciaLeitura),
		Title:     raw.Titulo,
		Text:      firstNonEmpty(raw.Texto, raw.TextoLeitura),
		Refrain:   raw.Refrao,
	}
	return nil
}

// LiturgyDocument is the provider's bundle for one day.
type LiturgyDocument struct {
	Date        string
	Weekday     string
	Color       string
	Celebration string
	Readings    map[string][]Reading

	EntranceAntiphon  string
	CommunionAntiphon string
}

// UnmarshalJSON decodes the provider document. Reading slots that are not
// arrays of readings are skipped rather than failing the whole document.
func (d *LiturgyDocument) UnmarshalJSON(b []byte) error {
	if t := bytes.TrimSpace(b); len(t) == 0 || t[0] != '{' {
		return ErrNotObject
	}

	var raw struct {
		Data             string                     `json:"data"`
		Dia              string                     `json:"dia"`
		Cor              string                     `json:"cor"`
		Liturgia         string                     `json:"liturgia"`
		Leituras         map[string]json.RawMessage `json:"leituras"`
		AntifonaEntrada  string                     `json:"antifona_entrada"`
		AntifonaComunhao string                     `json:"antifona_comunhao"`
		Antifonas        *struct {
			Entrada  string `json:"entrada"`
			Comunhao string `json:"comunhao"`
		} `json:"antifonas"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	doc := LiturgyDocument{
		Date:              raw.Data,
		Weekday:           raw.Dia,
		Color:             raw.Cor,
		Celebration:       raw.Liturgia,
		Readings:          make(map[string][]Reading, len(raw.Leituras)),
		EntranceAntiphon:  raw.AntifonaEntrada,
		CommunionAntiphon: raw.AntifonaComunhao,
	}
	if raw.Antifonas != nil {
		doc.EntranceAntiphon = firstNonEmpty(doc.EntranceAntiphon, raw.Antifonas.Entrada)
		doc.CommunionAntiphon = firstNonEmpty(doc.CommunionAntiphon, raw.Antifonas.Comunhao)
	}
	for slot, msg := range raw.Leituras {
		var readings []Reading
		if err := json.Unmarshal(msg, &readings); err != nil {
			continue
		}
		if len(readings) > 0 {
			doc.Readings[slot] = readings
		}
	}

	*d = doc
	return nil
}

// First returns the first reading of slot.
func (d *LiturgyDocument) First(slot string) (Reading, bool) {
	if d == nil || len(d.Readings[slot]) == 0 {
		return Reading{}, false
	}
	return d.Readings[slot][0], true
}

// ColorName is the liturgical colour, or "Tempo Comum" when the provider
// left it empty.
func (d *LiturgyDocument) ColorName() string {
	if strings.TrimSpace(d.Color) == "" {
		return "Tempo Comum"
	}
	return d.Color
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
