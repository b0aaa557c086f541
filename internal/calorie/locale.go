package calorie

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-prompter/pkg/declfile"
)

// DefaultLanguage is the language of the prompts declared in Entity.
const DefaultLanguage = "ru"

//go:embed locales/*.yaml
var locales embed.FS

var summaries = map[string]string{
	DefaultLanguage: "Ваша суточная норма ккал. составляет: ",
	"en":            "Your daily calorie norm is: ",
}

// Languages lists the supported prompt languages.
func Languages() []string {
	out := make([]string, 0, len(summaries))
	for lang := range summaries {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// Locale returns the declaration overlay translating the prompts into lang.
// The default language needs no overlay and yields an empty store.
func Locale(lang string) (*declfile.Store, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" || lang == DefaultLanguage {
		return declfile.LoadFS(nil)
	}
	if _, ok := summaries[lang]; !ok {
		return nil, fmt.Errorf("calorie: unsupported language %q", lang)
	}
	data, err := fs.ReadFile(locales, "locales/"+lang+".yaml")
	if err != nil {
		return nil, fmt.Errorf("calorie: read locale %q: %w", lang, err)
	}
	return declfile.Parse(data, "locales/"+lang+".yaml")
}

// Summary formats the result line in lang, falling back to the default
// language.
func Summary(lang string, kcal float64) string {
	prefix, ok := summaries[strings.ToLower(strings.TrimSpace(lang))]
	if !ok {
		prefix = summaries[DefaultLanguage]
	}
	return prefix + strconv.FormatFloat(kcal, 'f', -1, 64)
}
