package provider

import "encoding/json"

// SourceProject names this provider in the import ledger.
const SourceProject = "recipe-pixie"

// FlexString decodes JSON strings or bare numbers. The provider is not
// consistent about quoting ids and amounts.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

type Ingredient struct {
	Name   string     `json:"name"`
	Amount FlexString `json:"amount"`
	Unit   FlexString `json:"unit"`
}

// Step is either a bare string or an object carrying step/text fields.
// The union stays inside this package and the converter; nothing past the
// conversion sees it.
type Step struct {
	Plain string
	Step  string
	Text  string
}

func (s *Step) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &s.Plain)
	}
	var obj struct {
		Step string `json:"step"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	s.Step, s.Text = obj.Step, obj.Text
	return nil
}

// Line resolves the union: plain string first, then step, then text.
func (s Step) Line() string {
	if s.Plain != "" {
		return s.Plain
	}
	if s.Step != "" {
		return s.Step
	}
	return s.Text
}

// ExternalRecipe is the provider's recipe shape. All fields besides title
// are optional; the converter applies defaults.
type ExternalRecipe struct {
	ID          FlexString   `json:"id"`
	Title       string       `json:"title"`
	Subtitle    string       `json:"subtitle"`
	Description string       `json:"description"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []Step       `json:"steps"`
	WorkMinutes int          `json:"work_minutes"`
	CookMinutes int          `json:"cook_minutes"`
	RestMinutes int          `json:"rest_minutes"`
	Difficulty  string       `json:"difficulty"`
	Category    string       `json:"category"`
	Servings    int          `json:"servings"`
	ImageURL    string       `json:"image_url"`
}
