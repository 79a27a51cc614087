package types

import (
	"encoding/json"
	"sort"
)

type Locale struct {
	Country  string `json:"country"`
	Language string `json:"language"`
}

// LocalizedText covers the two ways Voyager ships a text field: a plain JSON
// string, or a language-keyed object alongside a preferredLocale hint.
type LocalizedText struct {
	Text            string
	Localized       map[string]string
	PreferredLocale *Locale
}

func (lt *LocalizedText) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &lt.Text)
	}

	var obj struct {
		Localized       map[string]string `json:"localized"`
		PreferredLocale *Locale           `json:"preferredLocale"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	lt.Localized = obj.Localized
	lt.PreferredLocale = obj.PreferredLocale
	return nil
}

func (lt LocalizedText) MarshalJSON() ([]byte, error) {
	return json.Marshal(lt.String())
}

// String picks the preferred-locale entry when one matches, otherwise the
// first available entry.
func (lt LocalizedText) String() string {
	if lt.Text != "" {
		return lt.Text
	}
	if len(lt.Localized) == 0 {
		return ""
	}

	if lt.PreferredLocale != nil {
		key := lt.PreferredLocale.Language + "_" + lt.PreferredLocale.Country
		if value, ok := lt.Localized[key]; ok {
			return value
		}
	}

	keys := make([]string, 0, len(lt.Localized))
	for key := range lt.Localized {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return lt.Localized[keys[0]]
}

func (lt LocalizedText) IsEmpty() bool {
	return lt.Text == "" && len(lt.Localized) == 0
}
